package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shavzak/scheduler/internal/config"
	"github.com/shavzak/scheduler/pkg/core/allocator"
	"github.com/shavzak/scheduler/pkg/db"
)

// FinalizeScheduleStore defines the database operations needed to finalise a schedule
type FinalizeScheduleStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	FinalizeSchedule(ctx context.Context, employees []db.Employee, history *db.ScheduleHistory) error
}

// FinalizeResult contains the outcome of finalising a schedule
type FinalizeResult struct {
	History          *db.ScheduleHistory
	UpdatedEmployees []allocator.Employee
	ValidationErrors []allocator.ValidationError

	// IgnoredEmployeeIDs are assigned in the schedule but not on the roster
	IgnoredEmployeeIDs []string

	// Saved is false when validation failed and force was not set
	Saved bool
}

// FinalizeSchedule commits a schedule into the employees' historical counters and
// records it in the schedule history. A schedule that breaks the scheduling rules
// (e.g. after hand-editing) is only saved when force is set.
func FinalizeSchedule(
	ctx context.Context,
	store FinalizeScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	doc *ScheduleDocument,
	force bool,
) (*FinalizeResult, error) {
	if doc == nil || len(doc.Schedule) == 0 {
		return nil, ErrEmptySchedule
	}

	weekStart, err := time.Parse(dateLayout, doc.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid week start %q: %w", doc.WeekStart, err)
	}

	week := cfg.Week()
	if unknown := allocator.UnknownSlots(week, doc.Schedule); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, strings.Join(unknown, ", "))
	}

	logger.Debug("Finalising schedule",
		zap.String("week_start", doc.WeekStart),
		zap.Bool("force", force))

	records, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	roster := rosterFromRecords(records)

	result := &FinalizeResult{
		ValidationErrors:   allocator.ValidateSchedule(week, doc.Schedule, nil, cfg.MaxShiftsPerWeek),
		IgnoredEmployeeIDs: unknownEmployeeIDs(doc.Schedule, roster),
	}

	for _, id := range result.IgnoredEmployeeIDs {
		logger.Warn("Schedule references an unknown employee, ignoring", zap.String("employee_id", id))
	}

	for _, validationErr := range result.ValidationErrors {
		logger.Warn("Schedule rule violated",
			zap.String("rule", validationErr.RuleName),
			zap.String("slot", validationErr.SlotName),
			zap.String("employee_id", validationErr.EmployeeID),
			zap.String("description", validationErr.Description))
	}

	if len(result.ValidationErrors) > 0 && !force {
		logger.Info("Schedule not saved due to validation errors (use force to save anyway)",
			zap.Int("validation_errors", len(result.ValidationErrors)))
		return result, nil
	}

	updated := allocator.ApplyToRoster(roster, week, doc.Schedule)
	result.UpdatedEmployees = allocator.SortByName(updated)

	// Only employees with at least one seat need writing
	var changed []db.Employee
	for _, employee := range result.UpdatedEmployees {
		if employee != roster[employee.ID] {
			changed = append(changed, recordFromEmployee(employee))
		}
	}

	history := &db.ScheduleHistory{
		ID:        uuid.New().String(),
		WeekStart: weekStart.Format(dateLayout),
		Schedule:  doc.Schedule,
	}

	if err := store.FinalizeSchedule(ctx, changed, history); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	result.History = history
	result.Saved = true

	logger.Info("Schedule finalised",
		zap.String("history_id", history.ID),
		zap.String("week_start", history.WeekStart),
		zap.Int("employees_updated", len(changed)))

	return result, nil
}

// unknownEmployeeIDs returns the sorted, de-duplicated IDs in the schedule missing from the roster
func unknownEmployeeIDs(schedule allocator.Schedule, roster map[string]allocator.Employee) []string {
	var unknown []string
	for _, ids := range schedule {
		for _, id := range ids {
			if _, ok := roster[id]; !ok && !slices.Contains(unknown, id) {
				unknown = append(unknown, id)
			}
		}
	}
	slices.Sort(unknown)
	return unknown
}
