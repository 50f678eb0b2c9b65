package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rankedIDs(employees []Employee) []string {
	ids := make([]string, len(employees))
	for i, employee := range employees {
		ids[i] = employee.ID
	}
	return ids
}

func TestRankCandidates_WeeklyLoadFirst(t *testing.T) {
	week := twoDayWeek()
	state := newRunState(week, nil, 3)
	state.Load["a"] = 1
	state.Load["b"] = 0

	a := Employee{ID: "a", TotalShiftsAssigned: 0}
	b := Employee{ID: "b", TotalShiftsAssigned: 50}

	ranked := RankCandidates(state, []Employee{a, b}, slotByName(week, "Mon_Day"))

	assert.Equal(t, []string{"b", "a"}, rankedIDs(ranked))
}

func TestRankCandidates_HistoryBeforePreference(t *testing.T) {
	week := twoDayWeek()
	prefs := PreferenceIndex{"Mon_Day": {"a": PreferencePrefer}}
	state := newRunState(week, prefs, 3)

	a := Employee{ID: "a", TotalShiftsAssigned: 5}
	b := Employee{ID: "b", TotalShiftsAssigned: 4}

	ranked := RankCandidates(state, []Employee{a, b}, slotByName(week, "Mon_Day"))

	assert.Equal(t, []string{"b", "a"}, rankedIDs(ranked))
}

func TestRankCandidates_PreferenceOrder(t *testing.T) {
	week := twoDayWeek()
	prefs := PreferenceIndex{"Mon_Day": {
		"a": PreferenceUnrecognized,
		"c": PreferencePrefer,
	}}
	state := newRunState(week, prefs, 3)

	candidates := []Employee{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	ranked := RankCandidates(state, candidates, slotByName(week, "Mon_Day"))

	assert.Equal(t, []string{"c", "b", "a"}, rankedIDs(ranked))
}

func TestRankCandidates_TypeCounterFollowsShiftType(t *testing.T) {
	week := twoDayWeek()
	state := newRunState(week, nil, 3)

	a := Employee{ID: "a", TotalShiftsAssigned: 4, TotalDayShiftsAssigned: 3, TotalNightShiftsAssigned: 1}
	b := Employee{ID: "b", TotalShiftsAssigned: 4, TotalDayShiftsAssigned: 1, TotalNightShiftsAssigned: 3}

	dayRanked := RankCandidates(state, []Employee{a, b}, slotByName(week, "Mon_Day"))
	nightRanked := RankCandidates(state, []Employee{a, b}, slotByName(week, "Mon_Night"))

	assert.Equal(t, []string{"b", "a"}, rankedIDs(dayRanked))
	assert.Equal(t, []string{"a", "b"}, rankedIDs(nightRanked))
}

func TestRankCandidates_IDTieBreak(t *testing.T) {
	week := twoDayWeek()
	state := newRunState(week, nil, 3)

	candidates := []Employee{{ID: "e3"}, {ID: "e1"}, {ID: "e2"}}

	ranked := RankCandidates(state, candidates, slotByName(week, "Tue_Night"))

	assert.Equal(t, []string{"e1", "e2", "e3"}, rankedIDs(ranked))
	// Input order is left untouched
	assert.Equal(t, []string{"e3", "e1", "e2"}, rankedIDs(candidates))
}
