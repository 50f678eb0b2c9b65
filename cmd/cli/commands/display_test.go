package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shavzak/scheduler/pkg/core/allocator"
)

func TestWriteScheduleGrid(t *testing.T) {
	week := allocator.Week{Days: []string{"Mon", "Tue"}, ShiftTypes: []string{"Day", "Night"}}
	names := map[string]string{
		"Mon_Day":   "Alice, Bob",
		"Mon_Night": "Carol",
		"Tue_Day":   "Alice",
		"Tue_Night": allocator.UnfilledLabel,
	}

	var buf bytes.Buffer
	writeScheduleGrid(&buf, week, names)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Shift  Mon         Tue       ", lines[0])
	assert.Equal(t, strings.Repeat("-", 7+12+10), lines[1])
	assert.Equal(t, "Day    Alice, Bob  Alice     ", lines[2])
	assert.Equal(t, "Night  Carol       "+colorRed+"UNFILLED  "+colorReset, lines[3])
}

func TestWriteEmployeeCounters(t *testing.T) {
	employees := []allocator.Employee{
		{ID: "E1", Name: "Alice", TotalShiftsAssigned: 5, TotalDayShiftsAssigned: 3, TotalNightShiftsAssigned: 2},
		{ID: "E2", Name: "Bob", TotalShiftsAssigned: 1, TotalNightShiftsAssigned: 1},
	}

	t.Run("with weekly load", func(t *testing.T) {
		var buf bytes.Buffer
		writeEmployeeCounters(&buf, employees, allocator.WeeklyLoad{"E1": 2, "E2": 0})

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Name"+strings.Repeat(" ", 18)+"    Week   Total     Day   Night", lines[0])
		assert.Equal(t, "Alice"+strings.Repeat(" ", 17)+"       2       5       3       2", lines[1])
		assert.Contains(t, lines[2], colorDim+"       0"+colorReset)
	})

	t.Run("without weekly load", func(t *testing.T) {
		var buf bytes.Buffer
		writeEmployeeCounters(&buf, employees, nil)

		assert.NotContains(t, buf.String(), "Week")
		assert.Contains(t, buf.String(), "Bob"+strings.Repeat(" ", 19)+"       1       0       1")
	})
}
