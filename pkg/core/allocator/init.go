package allocator

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateWeek checks that the day and shift type orderings can form a slot grid.
// Names must be non-empty, unique and free of "_" so slot names stay unambiguous.
func ValidateWeek(week Week) error {
	if err := validateNames("day", week.Days); err != nil {
		return err
	}
	if err := validateNames("shift type", week.ShiftTypes); err != nil {
		return err
	}
	return nil
}

func validateNames(kind string, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: at least one %s is required", ErrInvalidInput, kind)
	}

	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: %s %d is empty", ErrInvalidInput, kind, i)
		}
		if strings.Contains(name, "_") {
			return fmt.Errorf("%w: %s %q must not contain '_'", ErrInvalidInput, kind, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate %s %q", ErrInvalidInput, kind, name)
		}
		seen[name] = true
	}
	return nil
}

// validateConfig fails fast on input that does not have the expected shape
func validateConfig(config AllocationConfig) error {
	if err := ValidateWeek(config.Week); err != nil {
		return err
	}

	if config.MaxShiftsPerWeek < 0 {
		return fmt.Errorf("%w: max shifts per week must not be negative, got %d", ErrInvalidInput, config.MaxShiftsPerWeek)
	}

	for key, employee := range config.Roster {
		if key == "" {
			return fmt.Errorf("%w: roster contains an empty employee ID", ErrInvalidInput)
		}
		if employee.ID != key {
			return fmt.Errorf("%w: roster key %q does not match employee ID %q", ErrInvalidInput, key, employee.ID)
		}
		if employee.TotalShiftsAssigned < 0 || employee.TotalDayShiftsAssigned < 0 || employee.TotalNightShiftsAssigned < 0 {
			return fmt.Errorf("%w: employee %q has a negative shift counter", ErrInvalidInput, key)
		}
	}

	return nil
}

// snapshotRoster copies the roster into a slice ordered by employee ID
func snapshotRoster(roster map[string]Employee) []Employee {
	employees := make([]Employee, 0, len(roster))
	for _, employee := range roster {
		employees = append(employees, employee)
	}
	slices.SortFunc(employees, func(a, b Employee) int {
		return strings.Compare(a.ID, b.ID)
	})
	return employees
}
