package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/breaks"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type breakRepository struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) breaks.BreakRepository {
	return &breakRepository{db: db}
}

const breakColumns = `id, employee_id, attendance_id, type, started_at, ended_at,
	   duration_minutes, created_at`

func scanBreak(row pgx.Row) (breaks.Break, error) {
	var b breaks.Break
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.AttendanceID, &b.Type, &b.StartedAt, &b.EndedAt,
		&b.DurationMinutes, &b.CreatedAt,
	)
	return b, err
}

// Create implements breaks.BreakRepository.
func (r *breakRepository) Create(ctx context.Context, b *breaks.Break) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO breaks (id, employee_id, attendance_id, type, started_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		b.ID, b.EmployeeID, b.AttendanceID, b.Type, b.StartedAt,
	).Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create break: %w", err)
	}

	return nil
}

// GetByID implements breaks.BreakRepository.
func (r *breakRepository) GetByID(ctx context.Context, id string) (breaks.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + breakColumns + ` FROM breaks WHERE id = $1`

	b, err := scanBreak(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return breaks.Break{}, breaks.ErrBreakNotFound
		}
		return breaks.Break{}, fmt.Errorf("failed to get break: %w", err)
	}

	return b, nil
}

// GetOpenByEmployee implements breaks.BreakRepository.
func (r *breakRepository) GetOpenByEmployee(ctx context.Context, employeeID string) (breaks.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + breakColumns + `
		FROM breaks
		WHERE employee_id = $1
		  AND ended_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1
	`

	b, err := scanBreak(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return breaks.Break{}, breaks.ErrBreakNotFound
		}
		return breaks.Break{}, fmt.Errorf("failed to get open break: %w", err)
	}

	return b, nil
}

// ListByAttendance implements breaks.BreakRepository.
func (r *breakRepository) ListByAttendance(ctx context.Context, attendanceID string) ([]breaks.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + breakColumns + `
		FROM breaks
		WHERE attendance_id = $1
		ORDER BY started_at ASC
	`

	rows, err := q.Query(ctx, query, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}
	defer rows.Close()

	result := make([]breaks.Break, 0)
	for rows.Next() {
		b, err := scanBreak(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		result = append(result, b)
	}

	return result, rows.Err()
}

func breakFilterClauses(filter breaks.ListFilter) (string, []interface{}) {
	clauses := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("b.employee_id = $%d", len(args)))
	}

	if filter.Date != "" {
		args = append(args, filter.Date)
		clauses = append(clauses, fmt.Sprintf("a.date = $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}
	return where, args
}

// List implements breaks.BreakRepository.
func (r *breakRepository) List(ctx context.Context, filter breaks.ListFilter) ([]breaks.Break, error) {
	q := GetQuerier(ctx, r.db)

	where, args := breakFilterClauses(filter)

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT b.id, b.employee_id, e.name, b.attendance_id, b.type,
			   b.started_at, b.ended_at, b.duration_minutes, b.created_at
		FROM breaks b
		JOIN employees e ON e.id = b.employee_id
		JOIN attendances a ON a.id = b.attendance_id
		%s
		ORDER BY b.started_at DESC
		LIMIT $%d OFFSET $%d
	`, where, limitPos, offsetPos)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list team breaks: %w", err)
	}
	defer rows.Close()

	result := make([]breaks.Break, 0)
	for rows.Next() {
		var b breaks.Break
		err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.EmployeeName, &b.AttendanceID, &b.Type,
			&b.StartedAt, &b.EndedAt, &b.DurationMinutes, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		result = append(result, b)
	}

	return result, rows.Err()
}

// Count implements breaks.BreakRepository.
func (r *breakRepository) Count(ctx context.Context, filter breaks.ListFilter) (int, error) {
	q := GetQuerier(ctx, r.db)

	where, args := breakFilterClauses(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM breaks b
		JOIN attendances a ON a.id = b.attendance_id
		%s
	`, where)

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count team breaks: %w", err)
	}

	return count, nil
}

// Update implements breaks.BreakRepository.
func (r *breakRepository) Update(ctx context.Context, b *breaks.Break) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE breaks
		SET ended_at = $2, duration_minutes = $3
		WHERE id = $1
	`

	ct, err := q.Exec(ctx, query, b.ID, b.EndedAt, b.DurationMinutes)
	if err != nil {
		return fmt.Errorf("failed to update break: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return breaks.ErrBreakNotFound
	}

	return nil
}
