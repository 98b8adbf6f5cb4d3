package notification

import (
	"sync"

	"github.com/rs/zerolog"

	"supplier_report/internal/domain/entities"
	"supplier_report/internal/usecase/interfaces"
)

const DefaultCapacity = 20

// Buffer keeps the most recent notifications of a session until they are
// drained by the presentation layer. Every notification is also logged.
type Buffer struct {
	mu    sync.Mutex
	items []entities.Notification
	cap   int
	log   zerolog.Logger
}

var _ interfaces.INotifier = (*Buffer)(nil)

func NewBuffer(capacity int, log zerolog.Logger) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{cap: capacity, log: log}
}

func (b *Buffer) Notify(n entities.Notification) {
	b.log.WithLevel(level(n.Severity)).
		Str("severity", string(n.Severity)).
		Str("summary", n.Summary).
		Msg(n.Detail)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, n)
	if over := len(b.items) - b.cap; over > 0 {
		b.items = append([]entities.Notification(nil), b.items[over:]...)
	}
}

// Drain returns the pending notifications oldest first and empties the buffer.
func (b *Buffer) Drain() []entities.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.items
	b.items = nil
	return out
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

func level(s entities.NotificationSeverity) zerolog.Level {
	switch s {
	case entities.SeverityError:
		return zerolog.ErrorLevel
	case entities.SeverityWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
