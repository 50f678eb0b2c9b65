package allocator

import (
	"maps"
	"slices"
	"strings"
)

// ApplyToRoster returns copies of the roster employees with the schedule added to
// their historical counters. Every seat adds one to TotalShiftsAssigned and one to the
// day or night counter for the slot's shift type. IDs not in the roster and slot names
// outside the week are skipped. The input roster is not modified.
func ApplyToRoster(roster map[string]Employee, week Week, schedule Schedule) map[string]Employee {
	updated := maps.Clone(roster)
	if updated == nil {
		updated = make(map[string]Employee)
	}

	for _, slot := range week.Slots() {
		for _, id := range schedule[slot.Name()] {
			employee, ok := updated[id]
			if !ok {
				continue
			}
			employee.TotalShiftsAssigned++
			if slot.IsDayShift() {
				employee.TotalDayShiftsAssigned++
			} else {
				employee.TotalNightShiftsAssigned++
			}
			updated[id] = employee
		}
	}

	return updated
}

// SortByName returns the employees ordered by case-insensitive name, then ID
func SortByName(employees map[string]Employee) []Employee {
	sorted := slices.Collect(maps.Values(employees))
	slices.SortFunc(sorted, func(a, b Employee) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return sorted
}

// UnknownSlots returns the schedule keys that are not slots of the week, sorted
func UnknownSlots(week Week, schedule Schedule) []string {
	valid := make(map[string]bool)
	for _, slot := range week.Slots() {
		valid[slot.Name()] = true
	}

	var unknown []string
	for name := range schedule {
		if !valid[name] {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// ScheduleNames returns the display value of every slot in the week: the assigned
// employees' names joined with ", ", or UnfilledLabel. IDs missing from names are skipped.
func ScheduleNames(week Week, schedule Schedule, names map[string]string) map[string]string {
	slots := week.Slots()
	display := make(map[string]string, len(slots))
	for _, slot := range slots {
		labels := make([]string, 0, SlotCapacity)
		for _, id := range schedule[slot.Name()] {
			if name, ok := names[id]; ok {
				labels = append(labels, name)
			}
		}
		if len(labels) == 0 {
			display[slot.Name()] = UnfilledLabel
			continue
		}
		display[slot.Name()] = strings.Join(labels, ", ")
	}
	return display
}
