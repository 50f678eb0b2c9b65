package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shavzak/scheduler/pkg/db"
)

func TestListScheduleHistory(t *testing.T) {
	store := &mockStore{history: []db.ScheduleHistory{
		{ID: "h3", WeekStart: "2026-10-18"},
		{ID: "h2", WeekStart: "2026-10-11"},
		{ID: "h1", WeekStart: "2026-10-04"},
	}}

	history, err := ListScheduleHistory(context.Background(), store, zap.NewNop(), 2)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "h3", history[0].ID)
	assert.Equal(t, "h2", history[1].ID)
}

func TestListScheduleHistory_InvalidCount(t *testing.T) {
	_, err := ListScheduleHistory(context.Background(), &mockStore{}, zap.NewNop(), 0)
	assert.Error(t, err)
}
