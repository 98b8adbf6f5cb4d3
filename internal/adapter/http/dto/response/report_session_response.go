package response

import (
	"time"

	"supplier_report/internal/domain/entities"
)

type ReportSessionResponse struct {
	SessionID     string                  `json:"sessionId"`
	Link          string                  `json:"link"`
	CanGoBack     bool                    `json:"canGoBack"`
	CanGoForward  bool                    `json:"canGoForward"`
	CreatedAt     time.Time               `json:"createdAt"`
	Notifications []entities.Notification `json:"notifications"`
	View          entities.ReportView     `json:"view"`
}

func FromReportSession(s entities.ReportSession) ReportSessionResponse {
	notes := s.Notifications
	if notes == nil {
		notes = []entities.Notification{}
	}
	return ReportSessionResponse{
		SessionID:     s.ID,
		Link:          s.View.Link,
		CanGoBack:     s.CanGoBack,
		CanGoForward:  s.CanGoForward,
		CreatedAt:     s.CreatedAt,
		Notifications: notes,
		View:          s.View,
	}
}

type SharePaymentResponse struct {
	Payment  entities.Payment `json:"payment"`
	ShareURL string           `json:"shareUrl"`
}

func FromSharedPayment(s entities.SharedPayment) SharePaymentResponse {
	return SharePaymentResponse{Payment: s.Payment, ShareURL: s.ShareURL}
}

type ProvidersResponse struct {
	Providers []entities.Provider `json:"providers"`
	Total     int                 `json:"total"`
}

func FromProviders(ps []entities.Provider) ProvidersResponse {
	if ps == nil {
		ps = []entities.Provider{}
	}
	return ProvidersResponse{Providers: ps, Total: len(ps)}
}
