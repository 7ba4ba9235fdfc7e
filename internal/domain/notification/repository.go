package notification

import "context"

type NotificationRepository interface {
	// CreateBatch inserts many notifications in one statement.
	CreateBatch(ctx context.Context, notifications []Notification) error
	GetByID(ctx context.Context, id string) (Notification, error)
	// ListByRecipient returns the recipient's notifications newest first.
	ListByRecipient(ctx context.Context, recipientID string, limit int, offset int) ([]Notification, error)
	CountByRecipient(ctx context.Context, recipientID string) (int, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	DeleteAllByRecipient(ctx context.Context, recipientID string) error
}
