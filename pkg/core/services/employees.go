package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shavzak/scheduler/pkg/db"
)

// ListEmployees returns every employee sorted by case-insensitive name
func ListEmployees(ctx context.Context, store db.EmployeeStore, logger *zap.Logger) ([]db.Employee, error) {
	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	slices.SortFunc(employees, func(a, b db.Employee) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	logger.Debug("Listed employees", zap.Int("count", len(employees)))
	return employees, nil
}

// AddEmployee creates an employee with all historical counters at zero
func AddEmployee(ctx context.Context, store db.EmployeeStore, logger *zap.Logger, name string) (*db.Employee, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	existing, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	if nameTaken(existing, name, "") {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmployee, name)
	}

	employee := &db.Employee{
		ID:   uuid.New().String(),
		Name: name,
	}

	if err := store.InsertEmployee(ctx, employee); err != nil {
		if errors.Is(err, db.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmployee, name)
		}
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	logger.Info("Employee added", zap.String("id", employee.ID), zap.String("name", employee.Name))
	return employee, nil
}

// RenameEmployee changes an employee's display name; counters are untouched
func RenameEmployee(ctx context.Context, store db.EmployeeStore, logger *zap.Logger, id string, name string) (*db.Employee, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	employee, err := getEmployee(ctx, store, id)
	if err != nil {
		return nil, err
	}

	existing, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	if nameTaken(existing, name, id) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmployee, name)
	}

	if err := store.UpdateEmployeeName(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, db.ErrConflict):
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmployee, name)
		case errors.Is(err, db.ErrNotFound):
			return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
		}
		return nil, fmt.Errorf("failed to rename employee: %w", err)
	}

	logger.Info("Employee renamed",
		zap.String("id", id),
		zap.String("old_name", employee.Name),
		zap.String("new_name", name))

	employee.Name = name
	return employee, nil
}

// DeleteEmployee removes an employee. Finalised history keeps their ID.
func DeleteEmployee(ctx context.Context, store db.EmployeeStore, logger *zap.Logger, id string) (*db.Employee, error) {
	employee, err := getEmployee(ctx, store, id)
	if err != nil {
		return nil, err
	}

	if err := store.DeleteEmployee(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
		}
		return nil, fmt.Errorf("failed to delete employee: %w", err)
	}

	logger.Info("Employee deleted", zap.String("id", id), zap.String("name", employee.Name))
	return employee, nil
}

func getEmployee(ctx context.Context, store db.EmployeeStore, id string) (*db.Employee, error) {
	employee, err := store.GetEmployee(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return employee, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidEmployeeName
	}
	return name, nil
}

// nameTaken reports whether another employee already uses the name, ignoring case
func nameTaken(employees []db.Employee, name string, exceptID string) bool {
	for _, employee := range employees {
		if employee.ID != exceptID && strings.EqualFold(employee.Name, name) {
			return true
		}
	}
	return false
}
