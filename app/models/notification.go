package models

import "time"

// Notification is a row in the outbound SMS outbox. Delivery is
// best-effort: a send is attempted when the row is queued and failed
// rows are retried by the scheduler up to a bounded attempt count.
type Notification struct {
	ID        string             `json:"id"`
	Phone     string             `json:"phone"`
	Message   string             `json:"message"`
	Status    NotificationStatus `json:"status"`
	Attempts  int                `json:"attempts"`
	LastError string             `json:"last_error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	SentAt    *time.Time         `json:"sent_at,omitempty"`
}
