package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shavzak/scheduler/pkg/db"
)

// uniqueViolation is the Postgres error code for a unique constraint failure
const uniqueViolation = "23505"

// GetEmployees retrieves all employee records ordered by name
func (d *DB) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, total_shifts_assigned, total_day_shifts_assigned, total_night_shifts_assigned, created_at
		FROM employee
		ORDER BY LOWER(name), id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	for rows.Next() {
		var e db.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.TotalShiftsAssigned, &e.TotalDayShiftsAssigned, &e.TotalNightShiftsAssigned, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetEmployee retrieves a single employee by ID
func (d *DB) GetEmployee(ctx context.Context, id string) (*db.Employee, error) {
	var e db.Employee
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, total_shifts_assigned, total_day_shifts_assigned, total_night_shifts_assigned, created_at
		FROM employee
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.TotalShiftsAssigned, &e.TotalDayShiftsAssigned, &e.TotalNightShiftsAssigned, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("employee %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &e, nil
}

// InsertEmployee inserts a new employee record
func (d *DB) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	err := d.pool.QueryRow(ctx, `
		INSERT INTO employee (id, name, total_shifts_assigned, total_day_shifts_assigned, total_night_shifts_assigned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, employee.ID, employee.Name, employee.TotalShiftsAssigned, employee.TotalDayShiftsAssigned, employee.TotalNightShiftsAssigned).Scan(&employee.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", wrapConflict(err))
	}
	return nil
}

// UpdateEmployeeName renames an employee
func (d *DB) UpdateEmployeeName(ctx context.Context, id string, name string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE employee SET name = $2 WHERE id = $1
	`, id, name)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", wrapConflict(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", id, db.ErrNotFound)
	}
	return nil
}

// DeleteEmployee removes an employee record
func (d *DB) DeleteEmployee(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM employee WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", id, db.ErrNotFound)
	}
	return nil
}

// wrapConflict maps unique constraint failures onto db.ErrConflict
func wrapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", db.ErrConflict, pgErr.ConstraintName)
	}
	return err
}
