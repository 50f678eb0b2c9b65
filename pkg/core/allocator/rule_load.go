package allocator

import (
	"fmt"
	"slices"
)

// WeeklyCapRule enforces the maximum number of shifts per employee per week
type WeeklyCapRule struct{}

func (r *WeeklyCapRule) Name() string {
	return "WeeklyCap"
}

func (r *WeeklyCapRule) IsEligible(state *RunState, employeeID string, slot Slot) bool {
	return state.Load[employeeID] < state.MaxShiftsPerWeek
}

func (r *WeeklyCapRule) Validate(state *RunState) []ValidationError {
	var errors []ValidationError

	ids := make([]string, 0, len(state.Load))
	for id := range state.Load {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if state.Load[id] > state.MaxShiftsPerWeek {
			errors = append(errors, ValidationError{
				EmployeeID:  id,
				RuleName:    r.Name(),
				Description: fmt.Sprintf("Employee has %d shifts but the weekly cap is %d", state.Load[id], state.MaxShiftsPerWeek),
			})
		}
	}
	return errors
}

// NotConsecutiveRule prevents back-to-back shifts.
//
// Eligibility:
//   - The first shift type of a day cannot follow the last shift type of the previous day
//     (with Day/Night: no Day shift after the previous Night)
//   - Any later shift type cannot follow the preceding shift type of the same day
//     (with Day/Night: no Night shift after the same day's Day)
//   - The first slot of the week has no predecessor
type NotConsecutiveRule struct{}

func (r *NotConsecutiveRule) Name() string {
	return "NotConsecutive"
}

func (r *NotConsecutiveRule) IsEligible(state *RunState, employeeID string, slot Slot) bool {
	previous, ok := state.Week.previousSlot(slot)
	if !ok {
		return true
	}
	return !state.Schedule.Contains(previous.Name(), employeeID)
}

func (r *NotConsecutiveRule) Validate(state *RunState) []ValidationError {
	var errors []ValidationError
	for _, slot := range state.Week.Slots() {
		previous, ok := state.Week.previousSlot(slot)
		if !ok {
			continue
		}
		for _, id := range state.Schedule[slot.Name()] {
			if state.Schedule.Contains(previous.Name(), id) {
				errors = append(errors, ValidationError{
					SlotName:    slot.Name(),
					EmployeeID:  id,
					RuleName:    r.Name(),
					Description: fmt.Sprintf("Employee works %s immediately after %s", slot.Name(), previous.Name()),
				})
			}
		}
	}
	return errors
}
