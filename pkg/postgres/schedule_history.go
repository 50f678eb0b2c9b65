package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shavzak/scheduler/pkg/db"
)

// FinalizeSchedule writes the updated employee counters and the history record in one transaction
func (d *DB) FinalizeSchedule(ctx context.Context, employees []db.Employee, history *db.ScheduleHistory) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range employees {
		tag, err := tx.Exec(ctx, `
			UPDATE employee
			SET total_shifts_assigned = $2,
				total_day_shifts_assigned = $3,
				total_night_shifts_assigned = $4
			WHERE id = $1
		`, e.ID, e.TotalShiftsAssigned, e.TotalDayShiftsAssigned, e.TotalNightShiftsAssigned)
		if err != nil {
			return fmt.Errorf("failed to update counters for employee %s: %w", e.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("employee %s: %w", e.ID, db.ErrNotFound)
		}
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO schedule_history (id, week_start, schedule)
		VALUES ($1, $2, $3)
		RETURNING finalised_at
	`, history.ID, history.WeekStart, history.Schedule).Scan(&history.FinalisedAt)
	if err != nil {
		return fmt.Errorf("failed to insert schedule history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetScheduleHistory retrieves the most recently finalised weeks, newest first
func (d *DB) GetScheduleHistory(ctx context.Context, limit int) ([]db.ScheduleHistory, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, week_start, schedule, finalised_at
		FROM schedule_history
		ORDER BY finalised_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule history: %w", err)
	}
	defer rows.Close()

	var history []db.ScheduleHistory
	for rows.Next() {
		var h db.ScheduleHistory
		var weekStart time.Time
		if err := rows.Scan(&h.ID, &weekStart, &h.Schedule, &h.FinalisedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule history: %w", err)
		}
		h.WeekStart = weekStart.Format("2006-01-02")
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule history: %w", err)
	}

	return history, nil
}
