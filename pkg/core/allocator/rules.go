package allocator

// RunState is the per-run state the eligibility rules read.
// Schedule and Load are accumulated by the allocator; the rest is fixed for the run.
type RunState struct {
	Week             Week
	Preferences      PreferenceIndex
	MaxShiftsPerWeek int
	Schedule         Schedule
	Load             WeeklyLoad
}

// ValidationError describes one rule violation found in a schedule
type ValidationError struct {
	SlotName    string
	EmployeeID  string
	RuleName    string
	Description string
}

// Rule is a hard constraint on placing an employee in a slot
type Rule interface {
	// Name returns a human-readable identifier for this rule
	Name() string

	// IsEligible reports whether the employee may be placed in the slot right now.
	// This acts as a veto - if ANY rule returns false the employee is skipped
	IsEligible(state *RunState, employeeID string, slot Slot) bool

	// Validate checks a finished schedule against the rule
	Validate(state *RunState) []ValidationError
}

// DefaultRules returns the hard constraints applied to every scheduling run
func DefaultRules() []Rule {
	return []Rule{
		&SlotCapacityRule{},
		&NotAlreadyAssignedRule{},
		&NotRefusedRule{},
		&WeeklyCapRule{},
		&NotConsecutiveRule{},
	}
}

// IsEligible evaluates the default rules for one candidate and slot.
// It has no side effects and must be re-run after every commit.
func IsEligible(state *RunState, employeeID string, slot Slot) bool {
	return isEligible(state, employeeID, slot, DefaultRules())
}

func isEligible(state *RunState, employeeID string, slot Slot, rules []Rule) bool {
	for _, rule := range rules {
		if !rule.IsEligible(state, employeeID, slot) {
			return false
		}
	}
	return true
}

// ValidateSchedule checks a schedule against the default rules.
// Preferences may be nil, in which case refusals cannot be detected.
// An empty slice indicates the schedule is valid.
func ValidateSchedule(week Week, schedule Schedule, prefs PreferenceIndex, maxShiftsPerWeek int) []ValidationError {
	state := &RunState{
		Week:             week,
		Preferences:      prefs,
		MaxShiftsPerWeek: maxShiftsPerWeek,
		Schedule:         schedule,
		Load:             countLoad(schedule),
	}

	var errors []ValidationError
	for _, rule := range DefaultRules() {
		errors = append(errors, rule.Validate(state)...)
	}
	return errors
}

// countLoad derives per-employee shift counts from a schedule
func countLoad(schedule Schedule) WeeklyLoad {
	load := make(WeeklyLoad)
	for _, ids := range schedule {
		for _, id := range ids {
			load[id]++
		}
	}
	return load
}
