package notification

import "time"

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

func ValidKind(k string) bool {
	switch Kind(k) {
	case KindInfo, KindSuccess, KindWarning, KindError:
		return true
	}
	return false
}

// Notification is one message addressed to one recipient. Link points at
// the screen the notification is about, relative to the frontend root.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Link        *string   `json:"link"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}
