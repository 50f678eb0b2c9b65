package allocator

import (
	"cmp"
	"slices"
)

// candidateKey is the ascending composite key candidates are ranked by
type candidateKey struct {
	// weeklyLoad spreads shifts across employees within the week
	weeklyLoad int
	// totalShifts favours employees with fewer shifts historically
	totalShifts int
	// preference favours employees who asked for the slot
	preference int
	// typeShifts balances day and night exposure
	typeShifts int
	// id is the final deterministic tie-break
	id string
}

func rankingKey(state *RunState, employee Employee, slot Slot) candidateKey {
	typeShifts := employee.TotalNightShiftsAssigned
	if slot.IsDayShift() {
		typeShifts = employee.TotalDayShiftsAssigned
	}

	return candidateKey{
		weeklyLoad:  state.Load[employee.ID],
		totalShifts: employee.TotalShiftsAssigned,
		preference:  state.Preferences.Lookup(slot.Name(), employee.ID).score(),
		typeShifts:  typeShifts,
		id:          employee.ID,
	}
}

func compareKeys(a, b candidateKey) int {
	if c := cmp.Compare(a.weeklyLoad, b.weeklyLoad); c != 0 {
		return c
	}
	if c := cmp.Compare(a.totalShifts, b.totalShifts); c != 0 {
		return c
	}
	if c := cmp.Compare(a.preference, b.preference); c != 0 {
		return c
	}
	if c := cmp.Compare(a.typeShifts, b.typeShifts); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// RankCandidates returns the candidates ordered best-first for the slot.
// The input slice is not modified.
func RankCandidates(state *RunState, candidates []Employee, slot Slot) []Employee {
	keys := make(map[string]candidateKey, len(candidates))
	for _, employee := range candidates {
		keys[employee.ID] = rankingKey(state, employee, slot)
	}

	ranked := slices.Clone(candidates)
	slices.SortFunc(ranked, func(a, b Employee) int {
		return compareKeys(keys[a.ID], keys[b.ID])
	})
	return ranked
}
