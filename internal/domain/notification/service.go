package notification

import "context"

type NotificationService interface {
	// Queue hands notifications to the delivery workers. It never blocks
	// the caller and never fails the caller's operation.
	Queue(reqs ...CreateNotificationRequest)

	// List returns one page of the caller's notifications with counts.
	List(ctx context.Context, limit int, offset int) (ListResponse, error)

	// MarkRead flags one of the caller's notifications as read.
	MarkRead(ctx context.Context, notificationID string) error

	// ClearAll deletes every notification addressed to the caller.
	ClearAll(ctx context.Context) error

	// Shutdown flushes queued notifications and stops the workers.
	Shutdown()
}
