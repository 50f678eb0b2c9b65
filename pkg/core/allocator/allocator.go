package allocator

// Allocator holds the rules and state of a single scheduling run
type Allocator struct {
	rules     []Rule
	state     *RunState
	employees []Employee
	slots     []Slot
}

// Allocate runs the greedy slot-filling pass and returns the resulting schedule.
//
// Slots are visited in Day-major, ShiftType-minor order. Each slot is offered up to
// SlotCapacity times to the best eligible employee; when nobody is eligible the slot
// is left under-filled and reported in UnfilledSlots. Commitments are never revisited.
func Allocate(config AllocationConfig) (*AllocationOutcome, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	allocator := newAllocator(config)

	// Main allocation loop
	for _, slot := range allocator.slots {
		for seat := 0; seat < SlotCapacity; seat++ {
			candidates := allocator.eligibleCandidates(slot)

			// Nobody left for this slot, move on
			if len(candidates) == 0 {
				break
			}

			ranked := RankCandidates(allocator.state, candidates, slot)
			allocator.assign(ranked[0], slot)
		}
	}

	return allocator.buildOutcome(), nil
}

func newAllocator(config AllocationConfig) *Allocator {
	employees := snapshotRoster(config.Roster)

	ids := make([]string, len(employees))
	for i, employee := range employees {
		ids[i] = employee.ID
	}

	slots := config.Week.Slots()
	schedule := make(Schedule, len(slots))
	for _, slot := range slots {
		schedule[slot.Name()] = []string{}
	}

	return &Allocator{
		rules: DefaultRules(),
		state: &RunState{
			Week:             config.Week,
			Preferences:      BuildPreferenceIndex(config.Preferences, config.Roster),
			MaxShiftsPerWeek: config.MaxShiftsPerWeek,
			Schedule:         schedule,
			Load:             newWeeklyLoad(ids),
		},
		employees: employees,
		slots:     slots,
	}
}

// eligibleCandidates returns every roster employee who passes all rules for the slot
func (a *Allocator) eligibleCandidates(slot Slot) []Employee {
	candidates := make([]Employee, 0, len(a.employees))
	for _, employee := range a.employees {
		if isEligible(a.state, employee.ID, slot, a.rules) {
			candidates = append(candidates, employee)
		}
	}
	return candidates
}

// assign commits an employee to the next seat of the slot
func (a *Allocator) assign(employee Employee, slot Slot) {
	name := slot.Name()
	a.state.Schedule[name] = append(a.state.Schedule[name], employee.ID)
	a.state.Load[employee.ID]++
}

// buildOutcome creates the final report for the run
func (a *Allocator) buildOutcome() *AllocationOutcome {
	names := make(map[string]string, len(a.employees))
	for _, employee := range a.employees {
		names[employee.ID] = employee.Name
	}

	// Initialize with empty slices (not nil) for easier consumption
	outcome := &AllocationOutcome{
		Slots:         a.slots,
		Schedule:      a.state.Schedule,
		ScheduleNames: ScheduleNames(a.state.Week, a.state.Schedule, names),
		UnfilledSlots: []string{},
		WeeklyLoad:    a.state.Load,
	}

	for _, slot := range a.slots {
		if len(a.state.Schedule[slot.Name()]) < SlotCapacity {
			outcome.UnfilledSlots = append(outcome.UnfilledSlots, slot.Name())
		}
	}

	return outcome
}
