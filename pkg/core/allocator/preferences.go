package allocator

import "math"

// Preference is an employee's declared stance on working a slot
type Preference int

const (
	// PreferenceNeutral is the default when nothing was submitted
	PreferenceNeutral Preference = iota
	// PreferencePrefer boosts the employee for the slot
	PreferencePrefer
	// PreferenceRefuse excludes the employee from the slot
	PreferenceRefuse
	// PreferenceUnrecognized is any literal outside the known set.
	// The employee stays eligible but is ranked behind every prefer/neutral candidate
	// with the same load and history.
	PreferenceUnrecognized
)

// Preference literals as submitted by employees
const (
	LiteralNeutral = ""
	LiteralPrefer  = "1"
	LiteralRefuse  = "0"
)

// ParsePreference maps a submitted literal onto the closed Preference set
func ParsePreference(literal string) Preference {
	switch literal {
	case LiteralNeutral:
		return PreferenceNeutral
	case LiteralPrefer:
		return PreferencePrefer
	case LiteralRefuse:
		return PreferenceRefuse
	default:
		return PreferenceUnrecognized
	}
}

// String returns the literal form of the preference
func (p Preference) String() string {
	switch p {
	case PreferenceNeutral:
		return "neutral"
	case PreferencePrefer:
		return "prefer"
	case PreferenceRefuse:
		return "refuse"
	default:
		return "unrecognized"
	}
}

// score orders preferences for ranking; lower is better
func (p Preference) score() int {
	switch p {
	case PreferencePrefer:
		return 0
	case PreferenceNeutral:
		return 1
	default:
		return math.MaxInt
	}
}

// RawPreferences are submissions keyed by employee ID, then slot name, holding literals
type RawPreferences map[string]map[string]string

// PreferenceIndex is the per-slot lookup: slot name -> employee ID -> preference
type PreferenceIndex map[string]map[string]Preference

// BuildPreferenceIndex reshapes raw submissions into a per-slot lookup.
// Employees missing from the roster are dropped silently; slot names are not checked.
func BuildPreferenceIndex(raw RawPreferences, roster map[string]Employee) PreferenceIndex {
	index := make(PreferenceIndex)
	for employeeID, prefs := range raw {
		if _, known := roster[employeeID]; !known {
			continue
		}
		for slotName, literal := range prefs {
			bySlot, exists := index[slotName]
			if !exists {
				bySlot = make(map[string]Preference)
				index[slotName] = bySlot
			}
			bySlot[employeeID] = ParsePreference(literal)
		}
	}
	return index
}

// Lookup returns the employee's preference for the slot, PreferenceNeutral if none was given
func (idx PreferenceIndex) Lookup(slotName, employeeID string) Preference {
	bySlot, exists := idx[slotName]
	if !exists {
		return PreferenceNeutral
	}
	pref, exists := bySlot[employeeID]
	if !exists {
		return PreferenceNeutral
	}
	return pref
}
