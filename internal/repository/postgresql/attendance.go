package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/attendance"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.working_minutes,
	   a.punch_in_latitude, a.punch_in_longitude, a.punch_in_distance_m, a.punch_in_in_office,
	   a.punch_out_latitude, a.punch_out_longitude, a.punch_out_distance_m, a.punch_out_in_office,
	   a.work_log, a.mood, a.created_at, a.updated_at, e.name`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.PunchIn, &att.PunchOut, &att.WorkingMinutes,
		&att.PunchInLatitude, &att.PunchInLongitude, &att.PunchInDistanceM, &att.PunchInInOffice,
		&att.PunchOutLatitude, &att.PunchOutLongitude, &att.PunchOutDistanceM, &att.PunchOutInOffice,
		&att.WorkLog, &att.Mood, &att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, punch_in, mood,
			punch_in_latitude, punch_in_longitude, punch_in_distance_m, punch_in_in_office
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.PunchIn, att.Mood,
		att.PunchInLatitude, att.PunchInLongitude, att.PunchInDistanceM, att.PunchInInOffice,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	return nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET punch_out = $2, working_minutes = $3,
			punch_out_latitude = $4, punch_out_longitude = $5,
			punch_out_distance_m = $6, punch_out_in_office = $7,
			work_log = $8, mood = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.PunchOut, att.WorkingMinutes,
		att.PunchOutLatitude, att.PunchOutLongitude,
		att.PunchOutDistanceM, att.PunchOutInOffice,
		att.WorkLog, att.Mood,
	).Scan(&att.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

func attendanceFilterClauses(filter attendance.ListFilter) (string, []interface{}) {
	clauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.DateFrom != "" {
		args = append(args, filter.DateFrom)
		clauses = append(clauses, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.DateTo != "" {
		args = append(args, filter.DateTo)
		clauses = append(clauses, fmt.Sprintf("a.date <= $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}
	return where, args
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	where, args := attendanceFilterClauses(filter)

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		%s
		ORDER BY a.date DESC, e.name ASC
		LIMIT $%d OFFSET $%d
	`, where, limitPos, offsetPos)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// Count implements attendance.AttendanceRepository.
func (r *attendanceRepository) Count(ctx context.Context, filter attendance.ListFilter) (int, error) {
	q := GetQuerier(ctx, r.db)

	where, args := attendanceFilterClauses(filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM attendances a %s`, where)

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	return count, nil
}
