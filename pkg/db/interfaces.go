package db

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write violates a uniqueness constraint
	ErrConflict = errors.New("record conflicts with an existing record")
)

// EmployeeStore defines the interface for employee database operations
type EmployeeStore interface {
	GetEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	InsertEmployee(ctx context.Context, employee *Employee) error
	UpdateEmployeeName(ctx context.Context, id string, name string) error
	DeleteEmployee(ctx context.Context, id string) error
}

// ScheduleStore defines the interface for finalised schedule operations
type ScheduleStore interface {
	// FinalizeSchedule stores the updated employee counters and the history record atomically
	FinalizeSchedule(ctx context.Context, employees []Employee, history *ScheduleHistory) error
	GetScheduleHistory(ctx context.Context, limit int) ([]ScheduleHistory, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	EmployeeStore
	ScheduleStore
	Close()
}
