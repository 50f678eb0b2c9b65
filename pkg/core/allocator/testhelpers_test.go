package allocator

// Helper functions for tests

func twoDayWeek() Week {
	return Week{Days: []string{"Mon", "Tue"}, ShiftTypes: []string{"Day", "Night"}}
}

func newEmployee(id string) Employee {
	return Employee{ID: id, Name: "Employee " + id}
}

func rosterOf(employees ...Employee) map[string]Employee {
	roster := make(map[string]Employee, len(employees))
	for _, employee := range employees {
		roster[employee.ID] = employee
	}
	return roster
}

func newRunState(week Week, prefs PreferenceIndex, maxShifts int) *RunState {
	schedule := make(Schedule)
	for _, slot := range week.Slots() {
		schedule[slot.Name()] = []string{}
	}
	return &RunState{
		Week:             week,
		Preferences:      prefs,
		MaxShiftsPerWeek: maxShifts,
		Schedule:         schedule,
		Load:             make(WeeklyLoad),
	}
}

func slotByName(week Week, name string) Slot {
	for _, slot := range week.Slots() {
		if slot.Name() == name {
			return slot
		}
	}
	panic("unknown slot " + name)
}
