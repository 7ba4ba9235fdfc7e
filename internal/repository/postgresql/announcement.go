package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/announcement"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a *announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (id, title, body, kind, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.Title, a.Body, a.Kind, a.AuthorID).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	return nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.title, a.body, a.kind, a.author_id, e.name, a.created_at
		FROM announcements a
		JOIN employees e ON e.id = a.author_id
		WHERE a.id = $1
	`

	var a announcement.Announcement
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Body, &a.Kind, &a.AuthorID, &a.AuthorName, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement: %w", err)
	}

	return a, nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	ct, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}

// List implements announcement.AnnouncementRepository.
func (r *announcementRepository) List(ctx context.Context, limit int, offset int) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.title, a.body, a.kind, a.author_id, e.name, a.created_at
		FROM announcements a
		JOIN employees e ON e.id = a.author_id
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	announcements := make([]announcement.Announcement, 0)
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Kind, &a.AuthorID, &a.AuthorName, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// Count implements announcement.AnnouncementRepository.
func (r *announcementRepository) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	return count, nil
}
