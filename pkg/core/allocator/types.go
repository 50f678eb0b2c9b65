package allocator

import (
	"errors"
	"slices"
)

// SlotCapacity is the number of employees each slot is filled with
const SlotCapacity = 2

// ShiftTypeDay is the shift type whose historical counter is TotalDayShiftsAssigned.
// Every other shift type is balanced against TotalNightShiftsAssigned.
const ShiftTypeDay = "Day"

// UnfilledLabel is the display value for a slot with no assignees
const UnfilledLabel = "UNFILLED"

// ErrInvalidInput is wrapped by every error returned for malformed allocation input
var ErrInvalidInput = errors.New("invalid allocation input")

// Employee is a snapshot of an employee and their historical load
type Employee struct {
	ID                       string
	Name                     string
	TotalShiftsAssigned      int
	TotalDayShiftsAssigned   int
	TotalNightShiftsAssigned int
}

// Slot is a single (day, shift type) cell of the weekly grid
type Slot struct {
	Day       string
	ShiftType string

	// DayIndex and TypeIndex locate the slot in the configured orderings
	DayIndex  int
	TypeIndex int
}

// Name returns the slot key in "<Day>_<ShiftType>" form
func (s Slot) Name() string {
	return SlotName(s.Day, s.ShiftType)
}

// SlotName builds a slot key from a day and a shift type
func SlotName(day, shiftType string) string {
	return day + "_" + shiftType
}

// IsDayShift reports whether the slot is balanced against the day-shift counter
func (s Slot) IsDayShift() bool {
	return s.ShiftType == ShiftTypeDay
}

// Week describes the ordered grid of days and shift types
type Week struct {
	Days       []string
	ShiftTypes []string
}

// Slots returns the slot universe in Day-major, ShiftType-minor order
func (w Week) Slots() []Slot {
	slots := make([]Slot, 0, len(w.Days)*len(w.ShiftTypes))
	for di, day := range w.Days {
		for ti, shiftType := range w.ShiftTypes {
			slots = append(slots, Slot{
				Day:       day,
				ShiftType: shiftType,
				DayIndex:  di,
				TypeIndex: ti,
			})
		}
	}
	return slots
}

// previousSlot returns the slot that immediately precedes s in the week, if any.
// The first shift type of a day is preceded by the last shift type of the previous day.
func (w Week) previousSlot(s Slot) (Slot, bool) {
	if s.TypeIndex > 0 {
		ti := s.TypeIndex - 1
		return Slot{Day: s.Day, ShiftType: w.ShiftTypes[ti], DayIndex: s.DayIndex, TypeIndex: ti}, true
	}
	if s.DayIndex > 0 {
		di := s.DayIndex - 1
		ti := len(w.ShiftTypes) - 1
		return Slot{Day: w.Days[di], ShiftType: w.ShiftTypes[ti], DayIndex: di, TypeIndex: ti}, true
	}
	return Slot{}, false
}

// Schedule maps slot names to assigned employee IDs in selection order
type Schedule map[string][]string

// Contains reports whether the employee is assigned to the named slot
func (s Schedule) Contains(slotName, employeeID string) bool {
	return slices.Contains(s[slotName], employeeID)
}

// WeeklyLoad counts the shifts committed to each employee during one run
type WeeklyLoad map[string]int

// newWeeklyLoad returns a load table with an explicit zero for every roster employee
func newWeeklyLoad(employeeIDs []string) WeeklyLoad {
	load := make(WeeklyLoad, len(employeeIDs))
	for _, id := range employeeIDs {
		load[id] = 0
	}
	return load
}

// AllocationConfig contains everything a single scheduling run needs
type AllocationConfig struct {
	// Preferences are the raw submissions: employee ID -> slot name -> literal
	Preferences RawPreferences

	// Roster is keyed by employee ID; the map and its values are never modified
	Roster map[string]Employee

	// Week is the ordered grid of days and shift types
	Week Week

	// MaxShiftsPerWeek is the hard cap on shifts per employee in this run
	MaxShiftsPerWeek int
}

// AllocationOutcome is the result of a scheduling run
type AllocationOutcome struct {
	// Slots in allocation order
	Slots []Slot

	// Schedule holds the assigned employee IDs per slot (every slot has an entry)
	Schedule Schedule

	// ScheduleNames holds comma-joined employee names per slot, or UnfilledLabel
	ScheduleNames map[string]string

	// UnfilledSlots lists slots ending with fewer than SlotCapacity assignees, in slot order
	UnfilledSlots []string

	// WeeklyLoad holds the shifts assigned this run for every roster employee
	WeeklyLoad WeeklyLoad
}

// FullyUnfilled reports whether no slot received a full complement, e.g. for an empty roster
func (o *AllocationOutcome) FullyUnfilled() bool {
	return len(o.UnfilledSlots) == len(o.Slots)
}

// FilledSeats returns the number of seats assigned across the whole week
func (o *AllocationOutcome) FilledSeats() int {
	total := 0
	for _, ids := range o.Schedule {
		total += len(ids)
	}
	return total
}
