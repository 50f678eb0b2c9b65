package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/shavzak/scheduler/internal/config"
	"github.com/shavzak/scheduler/pkg/core/allocator"
	"github.com/shavzak/scheduler/pkg/core/prefgrid"
)

// ExportTemplate writes an empty preference grid for the current roster and
// returns the number of employee rows written
func ExportTemplate(ctx context.Context, store GenerateScheduleStore, cfg *config.Config, logger *zap.Logger, w io.Writer) (int, error) {
	records, err := store.GetEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch employees: %w", err)
	}
	if len(records) == 0 {
		return 0, ErrNoEmployees
	}

	employees := allocator.SortByName(rosterFromRecords(records))
	if err := prefgrid.WriteTemplate(w, employees, cfg.Week()); err != nil {
		return 0, err
	}

	logger.Debug("Preference template written", zap.Int("employees", len(employees)))
	return len(employees), nil
}
