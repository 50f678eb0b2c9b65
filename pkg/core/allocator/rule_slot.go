package allocator

import "fmt"

// SlotCapacityRule stops a slot from receiving more than SlotCapacity employees
type SlotCapacityRule struct{}

func (r *SlotCapacityRule) Name() string {
	return "SlotCapacity"
}

func (r *SlotCapacityRule) IsEligible(state *RunState, employeeID string, slot Slot) bool {
	return len(state.Schedule[slot.Name()]) < SlotCapacity
}

func (r *SlotCapacityRule) Validate(state *RunState) []ValidationError {
	var errors []ValidationError
	for _, slot := range state.Week.Slots() {
		assigned := len(state.Schedule[slot.Name()])
		if assigned > SlotCapacity {
			errors = append(errors, ValidationError{
				SlotName:    slot.Name(),
				RuleName:    r.Name(),
				Description: fmt.Sprintf("Slot is overfilled: has %d employees but capacity is %d", assigned, SlotCapacity),
			})
		}
	}
	return errors
}

// NotAlreadyAssignedRule prevents the same employee taking two seats in one slot
type NotAlreadyAssignedRule struct{}

func (r *NotAlreadyAssignedRule) Name() string {
	return "NotAlreadyAssigned"
}

func (r *NotAlreadyAssignedRule) IsEligible(state *RunState, employeeID string, slot Slot) bool {
	return !state.Schedule.Contains(slot.Name(), employeeID)
}

func (r *NotAlreadyAssignedRule) Validate(state *RunState) []ValidationError {
	var errors []ValidationError
	for _, slot := range state.Week.Slots() {
		seen := make(map[string]bool)
		for _, id := range state.Schedule[slot.Name()] {
			if seen[id] {
				errors = append(errors, ValidationError{
					SlotName:    slot.Name(),
					EmployeeID:  id,
					RuleName:    r.Name(),
					Description: "Employee is assigned to the same slot more than once",
				})
			}
			seen[id] = true
		}
	}
	return errors
}

// NotRefusedRule excludes employees from slots they refused
type NotRefusedRule struct{}

func (r *NotRefusedRule) Name() string {
	return "NotRefused"
}

func (r *NotRefusedRule) IsEligible(state *RunState, employeeID string, slot Slot) bool {
	return state.Preferences.Lookup(slot.Name(), employeeID) != PreferenceRefuse
}

func (r *NotRefusedRule) Validate(state *RunState) []ValidationError {
	var errors []ValidationError
	if state.Preferences == nil {
		return errors
	}
	for _, slot := range state.Week.Slots() {
		for _, id := range state.Schedule[slot.Name()] {
			if state.Preferences.Lookup(slot.Name(), id) == PreferenceRefuse {
				errors = append(errors, ValidationError{
					SlotName:    slot.Name(),
					EmployeeID:  id,
					RuleName:    r.Name(),
					Description: "Employee is assigned to a slot they refused",
				})
			}
		}
	}
	return errors
}
