package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shavzak/scheduler/internal/config"
	"github.com/shavzak/scheduler/pkg/clients/sheetsclient"
	"github.com/shavzak/scheduler/pkg/core/allocator"
	"github.com/shavzak/scheduler/pkg/db"
)

// PublishScheduleStore defines the database operations needed to publish a schedule
type PublishScheduleStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetScheduleHistory(ctx context.Context, limit int) ([]db.ScheduleHistory, error)
}

// SchedulePublisher writes a finalised week to a spreadsheet
type SchedulePublisher interface {
	PublishSchedule(spreadsheetID string, schedule *sheetsclient.PublishedSchedule) error
}

// PublishSchedule publishes the most recently finalised week to the configured spreadsheet.
// Employees deleted since finalisation are left out of the names.
func PublishSchedule(
	ctx context.Context,
	store PublishScheduleStore,
	publisher SchedulePublisher,
	cfg *config.Config,
	logger *zap.Logger,
) (*sheetsclient.PublishedSchedule, error) {
	if cfg.PublishSheetID == "" {
		return nil, ErrPublishNotConfigured
	}

	history, err := store.GetScheduleHistory(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule history: %w", err)
	}
	if len(history) == 0 {
		return nil, ErrNoHistory
	}
	latest := history[0]

	records, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	week := cfg.Week()
	published := &sheetsclient.PublishedSchedule{
		WeekStart:  latest.WeekStart,
		Days:       week.Days,
		ShiftTypes: week.ShiftTypes,
		Names:      allocator.ScheduleNames(week, latest.Schedule, employeeNames(records)),
	}

	logger.Debug("Publishing schedule",
		zap.String("history_id", latest.ID),
		zap.String("week_start", latest.WeekStart),
		zap.String("spreadsheet_id", cfg.PublishSheetID))

	if err := publisher.PublishSchedule(cfg.PublishSheetID, published); err != nil {
		return nil, fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Schedule published", zap.String("week_start", latest.WeekStart))
	return published, nil
}
