package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/shavzak/scheduler/pkg/core/allocator"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorDim   = "\033[2m"
)

// writeScheduleGrid prints one row per shift type and one column per day
func writeScheduleGrid(w io.Writer, week allocator.Week, names map[string]string) {
	typeColWidth := len("Shift")
	for _, shiftType := range week.ShiftTypes {
		typeColWidth = max(typeColWidth, len(shiftType))
	}
	typeColWidth += 2

	// Each day column is as wide as its longest cell
	dayColWidths := make([]int, len(week.Days))
	for i, day := range week.Days {
		width := len(day)
		for _, shiftType := range week.ShiftTypes {
			width = max(width, len(names[allocator.SlotName(day, shiftType)]))
		}
		dayColWidths[i] = width + 2
	}

	fmt.Fprintf(w, "%-*s", typeColWidth, "Shift")
	for i, day := range week.Days {
		fmt.Fprintf(w, "%-*s", dayColWidths[i], day)
	}
	fmt.Fprintln(w)

	total := typeColWidth
	for _, width := range dayColWidths {
		total += width
	}
	fmt.Fprintln(w, strings.Repeat("-", total))

	for _, shiftType := range week.ShiftTypes {
		fmt.Fprintf(w, "%-*s", typeColWidth, shiftType)
		for i, day := range week.Days {
			cell := names[allocator.SlotName(day, shiftType)]
			if cell == allocator.UnfilledLabel {
				fmt.Fprintf(w, "%s%-*s%s", colorRed, dayColWidths[i], cell, colorReset)
				continue
			}
			fmt.Fprintf(w, "%-*s", dayColWidths[i], cell)
		}
		fmt.Fprintln(w)
	}
}

// writeEmployeeCounters prints each employee's shifts this week and their counters.
// load may be nil when the weekly column is not wanted.
func writeEmployeeCounters(w io.Writer, employees []allocator.Employee, load allocator.WeeklyLoad) {
	nameColWidth := 20
	for _, e := range employees {
		nameColWidth = max(nameColWidth, len(e.Name))
	}
	nameColWidth += 2

	fmt.Fprintf(w, "%-*s", nameColWidth, "Name")
	if load != nil {
		fmt.Fprintf(w, "%8s", "Week")
	}
	fmt.Fprintf(w, "%8s%8s%8s\n", "Total", "Day", "Night")

	for _, e := range employees {
		fmt.Fprintf(w, "%-*s", nameColWidth, e.Name)
		if load != nil {
			if load[e.ID] == 0 {
				fmt.Fprintf(w, "%s%8d%s", colorDim, 0, colorReset)
			} else {
				fmt.Fprintf(w, "%8d", load[e.ID])
			}
		}
		fmt.Fprintf(w, "%8d%8d%8d\n", e.TotalShiftsAssigned, e.TotalDayShiftsAssigned, e.TotalNightShiftsAssigned)
	}
}
