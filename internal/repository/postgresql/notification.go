package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/notification"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateBatch implements notification.NotificationRepository.
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(notifications))
	args := make([]interface{}, 0, len(notifications)*6)
	for i, n := range notifications {
		base := i * 6
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, n.ID, n.RecipientID, n.Kind, n.Title, n.Body, n.Link)
	}

	query := fmt.Sprintf(`
		INSERT INTO notifications (id, recipient_id, kind, title, body, link)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	return nil
}

// GetByID implements notification.NotificationRepository.
func (r *notificationRepository) GetByID(ctx context.Context, id string) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, recipient_id, kind, title, body, link, read, created_at
		FROM notifications
		WHERE id = $1
	`

	var n notification.Notification
	err := q.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.RecipientID, &n.Kind, &n.Title, &n.Body, &n.Link, &n.Read, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.Notification{}, notification.ErrNotificationNotFound
		}
		return notification.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// ListByRecipient implements notification.NotificationRepository.
func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, limit int, offset int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, recipient_id, kind, title, body, link, read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Kind, &n.Title, &n.Body, &n.Link, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// CountByRecipient implements notification.NotificationRepository.
func (r *notificationRepository) CountByRecipient(ctx context.Context, recipientID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1`, recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return count, nil
}

// CountUnread implements notification.NotificationRepository.
func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND read = FALSE`, recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead implements notification.NotificationRepository.
func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	ct, err := q.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

// DeleteAllByRecipient implements notification.NotificationRepository.
func (r *notificationRepository) DeleteAllByRecipient(ctx context.Context, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM notifications WHERE recipient_id = $1`, recipientID); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}

	return nil
}
