package announcement

import "context"

type AnnouncementService interface {
	// Create posts an announcement to everyone. Manager or Admin only.
	// All other employees receive a notification.
	Create(ctx context.Context, req CreateAnnouncementRequest) (Announcement, error)

	// Delete removes an announcement. The author or an Admin may delete.
	Delete(ctx context.Context, announcementID string) error

	// List returns announcements newest first.
	List(ctx context.Context, limit int, offset int) ([]Announcement, int, error)
}
