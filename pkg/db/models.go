package db

import "time"

// Employee represents a database employee record
type Employee struct {
	ID                       string
	Name                     string
	TotalShiftsAssigned      int
	TotalDayShiftsAssigned   int
	TotalNightShiftsAssigned int
	CreatedAt                time.Time
}

// ScheduleHistory represents a finalised week
type ScheduleHistory struct {
	ID string
	// WeekStart is the first day of the scheduled week (YYYY-MM-DD)
	WeekStart string
	// Schedule maps slot names to the employee IDs assigned to them
	Schedule    map[string][]string
	FinalisedAt time.Time
}
