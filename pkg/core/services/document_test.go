package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduleDocument_FromGeneratedSchedule(t *testing.T) {
	store := &mockStore{employees: testEmployees()[:1]}

	result, err := GenerateSchedule(context.Background(), store, testConfig(), zap.NewNop(), nil, saturday)
	require.NoError(t, err)

	doc := NewScheduleDocument(result)

	var buf bytes.Buffer
	require.NoError(t, WriteScheduleDocument(&buf, doc))
	assert.Contains(t, buf.String(), `"weekStart": "2026-10-18"`)

	read, err := ReadScheduleDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, read)
	assert.Equal(t, []string{"Mon_Day", "Mon_Night", "Tue_Day", "Tue_Night"}, read.UnfilledSlots)
}

func TestReadScheduleDocument_HandEdited(t *testing.T) {
	input := `{"weekStart": "2026-10-18", "schedule": {"Mon_Day": ["E1", "E2"]}}`

	doc, err := ReadScheduleDocument(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "2026-10-18", doc.WeekStart)
	assert.Equal(t, []string{"E1", "E2"}, doc.Schedule["Mon_Day"])
	assert.Nil(t, doc.ScheduleNames)
}

func TestReadScheduleDocument_Invalid(t *testing.T) {
	_, err := ReadScheduleDocument(strings.NewReader("{not json"))
	assert.Error(t, err)
}
