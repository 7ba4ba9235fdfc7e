package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/leave"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `l.id, l.employee_id, e.name, l.type, l.date_from, l.date_to,
	   l.is_half_day, l.half_day_session, l.days, l.reason, l.status,
	   l.approver_id, l.approver_name, l.approver_response, l.cancel_reason,
	   l.decided_at, l.created_at, l.updated_at`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.EmployeeName, &l.Type, &l.DateFrom, &l.DateTo,
		&l.IsHalfDay, &l.HalfDaySession, &l.Days, &l.Reason, &l.Status,
		&l.ApproverID, &l.ApproverName, &l.ApproverResponse, &l.CancelReason,
		&l.DecidedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (
			id, employee_id, type, date_from, date_to,
			is_half_day, half_day_session, days, reason, status,
			approver_id, approver_name
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.Type, l.DateFrom, l.DateTo,
		l.IsHalfDay, l.HalfDaySession, l.Days, l.Reason, l.Status,
		l.ApproverID, l.ApproverName,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create leave: %w", err)
	}

	return nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $2, approver_response = $3, cancel_reason = $4,
			decided_at = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.Status, l.ApproverResponse, l.CancelReason, l.DecidedAt,
	).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update leave: %w", err)
	}

	return nil
}

func leaveFilterClauses(filter leave.ListFilter) (string, []interface{}) {
	clauses := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("l.employee_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("l.status = $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}
	return where, args
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	where, args := leaveFilterClauses(filter)

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT `+leaveColumns+`
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		%s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, limitPos, offsetPos)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

// Count implements leave.LeaveRepository.
func (r *leaveRepository) Count(ctx context.Context, filter leave.ListFilter) (int, error) {
	q := GetQuerier(ctx, r.db)

	where, args := leaveFilterClauses(filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM leaves l %s`, where)

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	return count, nil
}
