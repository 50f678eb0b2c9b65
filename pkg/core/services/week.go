package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// dateLayout is the format used for week start dates
const dateLayout = "2006-01-02"

// WeekStart returns the first date on or after from that matches the week start rule.
// With the default FREQ=WEEKLY;BYDAY=SU this is the coming Sunday, or from itself on a Sunday.
func WeekStart(rule string, from time.Time) (time.Time, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week start rule: %w", err)
	}

	// Normalize to start of day to avoid time-of-day issues
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	opt.Dtstart = day

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week start rule: %w", err)
	}

	start := r.After(day, true)
	if start.IsZero() {
		return time.Time{}, fmt.Errorf("week start rule %q has no occurrence on or after %s", rule, day.Format(dateLayout))
	}

	return start, nil
}
