package announcement

import "errors"

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrNotAnnouncementOwner = errors.New("announcement belongs to another author")
)
