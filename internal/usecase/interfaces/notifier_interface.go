package interfaces

import "supplier_report/internal/domain/entities"

// INotifier raises transient user-facing messages.
type INotifier interface {
	Notify(n entities.Notification)
}
