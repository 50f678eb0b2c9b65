package services

import "errors"

var (
	// ErrNoEmployees is returned when an operation needs a non-empty roster
	ErrNoEmployees = errors.New("no employees found")

	// ErrEmployeeNotFound is returned when an employee ID does not exist
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateEmployee is returned when a name is already taken (case-insensitive)
	ErrDuplicateEmployee = errors.New("an employee with this name already exists")

	// ErrInvalidEmployeeName is returned for names that are empty after trimming
	ErrInvalidEmployeeName = errors.New("employee name is required")

	// ErrEmptySchedule is returned when finalising a schedule with no slots
	ErrEmptySchedule = errors.New("schedule is empty")

	// ErrUnknownSlot is returned when a schedule names slots outside the configured week
	ErrUnknownSlot = errors.New("schedule contains unknown slots")

	// ErrNoHistory is returned when no week has been finalised yet
	ErrNoHistory = errors.New("no finalised schedules found")

	// ErrPublishNotConfigured is returned when publishSheetID is not set
	ErrPublishNotConfigured = errors.New("publishSheetID is not configured")
)
