package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shavzak/scheduler/pkg/db"
)

// DefaultHistoryCount is the number of weeks listed when no count is given
const DefaultHistoryCount = 10

// ListScheduleHistory returns the most recently finalised weeks, newest first
func ListScheduleHistory(ctx context.Context, store db.ScheduleStore, logger *zap.Logger, count int) ([]db.ScheduleHistory, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	history, err := store.GetScheduleHistory(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule history: %w", err)
	}

	logger.Debug("Fetched schedule history", zap.Int("requested", count), zap.Int("found", len(history)))
	return history, nil
}
