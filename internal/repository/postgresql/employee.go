package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, email, phone, role, status, password_hash,
	   designation, joining_date, bio, avatar_url, status_text, status_emoji,
	   created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Role, &e.Status, &e.PasswordHash,
		&e.Designation, &e.JoiningDate, &e.Bio, &e.AvatarURL, &e.StatusText, &e.StatusEmoji,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, email, phone, role, status, password_hash,
			designation, joining_date, bio, avatar_url, status_text, status_emoji
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.Phone, emp.Role, emp.Status, emp.PasswordHash,
		emp.Designation, emp.JoiningDate, emp.Bio, emp.AvatarURL, emp.StatusText, emp.StatusEmoji,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(email) = LOWER($1)`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return e, nil
}

// GetByPhone implements employee.EmployeeRepository.
func (r *employeeRepository) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE phone = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by phone: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// UpdateProfile implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateProfile(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, phone = $3, role = $4, designation = $5, joining_date = $6,
			bio = $7, avatar_url = $8, status_text = $9, status_emoji = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	ct, err := q.Exec(ctx, query,
		emp.ID, emp.Name, emp.Phone, emp.Role, emp.Designation, emp.JoiningDate,
		emp.Bio, emp.AvatarURL, emp.StatusText, emp.StatusEmoji,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee profile: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET status = $2, updated_at = NOW() WHERE id = $1`

	ct, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdatePassword implements employee.EmployeeRepository.
func (r *employeeRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	ct, err := q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update employee password: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	ct, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
