package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shavzak/scheduler/pkg/core/allocator"
	"github.com/shavzak/scheduler/pkg/db"
)

func TestPublishSchedule_Success(t *testing.T) {
	store := &mockStore{
		employees: testEmployees(),
		history: []db.ScheduleHistory{
			{
				ID:        "h2",
				WeekStart: "2026-10-18",
				Schedule: map[string][]string{
					"Mon_Day":   {"E1", "E2"},
					"Tue_Night": {"E3", "deleted"},
				},
			},
			{ID: "h1", WeekStart: "2026-10-11"},
		},
	}
	publisher := &mockPublisher{}
	cfg := testConfig()
	cfg.PublishSheetID = "publish-sheet"

	published, err := PublishSchedule(context.Background(), store, publisher, cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "publish-sheet", publisher.spreadsheetID)
	assert.Same(t, published, publisher.published)
	assert.Equal(t, "2026-10-18", published.WeekStart)
	assert.Equal(t, []string{"Mon", "Tue"}, published.Days)
	assert.Equal(t, []string{"Day", "Night"}, published.ShiftTypes)
	assert.Equal(t, map[string]string{
		"Mon_Day":   "Alice, bob",
		"Mon_Night": allocator.UnfilledLabel,
		"Tue_Day":   allocator.UnfilledLabel,
		"Tue_Night": "Carol",
	}, published.Names)
}

func TestPublishSchedule_NotConfigured(t *testing.T) {
	publisher := &mockPublisher{}

	_, err := PublishSchedule(context.Background(), &mockStore{}, publisher, testConfig(), zap.NewNop())
	assert.ErrorIs(t, err, ErrPublishNotConfigured)
	assert.Nil(t, publisher.published)
}

func TestPublishSchedule_NoHistory(t *testing.T) {
	cfg := testConfig()
	cfg.PublishSheetID = "publish-sheet"

	_, err := PublishSchedule(context.Background(), &mockStore{employees: testEmployees()}, &mockPublisher{}, cfg, zap.NewNop())
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestPublishSchedule_PublisherError(t *testing.T) {
	publishErr := errors.New("quota exceeded")
	store := &mockStore{
		employees: testEmployees(),
		history:   []db.ScheduleHistory{{ID: "h1", WeekStart: "2026-10-18", Schedule: map[string][]string{}}},
	}
	cfg := testConfig()
	cfg.PublishSheetID = "publish-sheet"

	_, err := PublishSchedule(context.Background(), store, &mockPublisher{err: publishErr}, cfg, zap.NewNop())
	assert.ErrorIs(t, err, publishErr)
}
