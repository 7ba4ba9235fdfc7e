package announcement

import "time"

type Kind string

const (
	KindInfo    Kind = "info"
	KindUrgent  Kind = "urgent"
	KindSuccess Kind = "success"
)

func ValidKind(k string) bool {
	switch Kind(k) {
	case KindInfo, KindUrgent, KindSuccess:
		return true
	}
	return false
}

// Announcement is a company-wide broadcast visible to all employees.
type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Kind       Kind      `json:"kind"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
