package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shavzak/scheduler/internal/config"
	"github.com/shavzak/scheduler/pkg/core/allocator"
	"github.com/shavzak/scheduler/pkg/db"
)

// GenerateScheduleStore defines the database operations needed for schedule generation
type GenerateScheduleStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
}

// ScheduleResult contains the proposed schedule for a week
type ScheduleResult struct {
	WeekStart time.Time
	Week      allocator.Week
	Outcome   *allocator.AllocationOutcome

	// UpdatedEmployees previews the historical counters after finalisation, sorted by name
	UpdatedEmployees []allocator.Employee

	PreferencesApplied int
	PreferenceWarnings []string
}

// GenerateSchedule proposes a schedule for the week starting on or after from.
// Nothing is persisted; the result must be finalised separately.
// loader may be nil, in which case every preference is neutral.
func GenerateSchedule(
	ctx context.Context,
	store GenerateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	loader PreferenceLoader,
	from time.Time,
) (*ScheduleResult, error) {
	logger.Debug("Generating schedule", zap.Time("from", from))

	weekStart, err := WeekStart(cfg.WeekStartRule, from)
	if err != nil {
		return nil, err
	}

	// Fetch roster
	logger.Debug("Fetching employees")
	records, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoEmployees
	}

	roster := rosterFromRecords(records)
	week := cfg.Week()

	logger.Debug("Roster loaded",
		zap.Int("employees", len(roster)),
		zap.Strings("days", week.Days),
		zap.Strings("shift_types", week.ShiftTypes))

	result := &ScheduleResult{
		WeekStart:          weekStart,
		Week:               week,
		PreferenceWarnings: []string{},
	}

	var prefs allocator.RawPreferences
	if loader != nil {
		grid, err := loader(allocator.SortByName(roster), week)
		if err != nil {
			return nil, fmt.Errorf("failed to load preferences: %w", err)
		}
		prefs = grid.Preferences
		result.PreferencesApplied = grid.Applied
		result.PreferenceWarnings = grid.Warnings

		for _, warning := range grid.Warnings {
			logger.Warn("Preference import warning", zap.String("warning", warning))
		}
		logger.Debug("Preferences loaded",
			zap.Int("employees", len(prefs)),
			zap.Int("applied", grid.Applied))
	}

	outcome, err := allocator.Allocate(allocator.AllocationConfig{
		Preferences:      prefs,
		Roster:           roster,
		Week:             week,
		MaxShiftsPerWeek: cfg.MaxShiftsPerWeek,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate schedule: %w", err)
	}

	result.Outcome = outcome
	result.UpdatedEmployees = allocator.SortByName(allocator.ApplyToRoster(roster, week, outcome.Schedule))

	logger.Info("Schedule generated",
		zap.String("week_start", weekStart.Format(dateLayout)),
		zap.Int("filled_seats", outcome.FilledSeats()),
		zap.Int("unfilled_slots", len(outcome.UnfilledSlots)))

	return result, nil
}
