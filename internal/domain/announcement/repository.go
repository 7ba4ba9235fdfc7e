package announcement

import "context"

type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) error
	GetByID(ctx context.Context, id string) (Announcement, error)
	Delete(ctx context.Context, id string) error
	// List returns announcements newest first.
	List(ctx context.Context, limit int, offset int) ([]Announcement, error)
	Count(ctx context.Context) (int, error)
}
