package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, stored as minutes since
// midnight in the organization's local zone.
type TimeOfDay struct {
	Minutes int // 0..1439
}

// ParseTimeOfDay accepts "15:04" or "15:04:05". Seconds are truncated.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay{Minutes: h*60 + m}, nil
}

func (t TimeOfDay) Hour() int   { return t.Minutes / 60 }
func (t TimeOfDay) Minute() int { return t.Minutes % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At anchors the wall-clock time to a calendar date in the given location.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// ShiftDefinition is the resolved schedule for one (employee, weekday,
// half-of-month) key. Immutable once resolved.
type ShiftDefinition struct {
	Entry           TimeOfDay
	Exit            TimeOfDay
	CrossesMidnight bool
	Expected        time.Duration
}

// ExpectedDuration derives the scheduled shift length, rolling the exit
// into the next day when the shift crosses midnight.
func ExpectedDuration(entry, exit TimeOfDay, crossesMidnight bool) time.Duration {
	mins := exit.Minutes - entry.Minutes
	if crossesMidnight || mins <= 0 {
		mins += 24 * 60
	}
	return time.Duration(mins) * time.Minute
}

// OverrideRow is a day-specific schedule override for one employee. A nil
// FirstHalf means the override applies to either half of the month.
type OverrideRow struct {
	EmployeeID      string
	Weekday         int // 1=Monday .. 7=Sunday
	FirstHalf       *bool
	Entry           TimeOfDay
	Exit            TimeOfDay
	CrossesMidnight bool
}

// PatternRow is a recurring weekly pattern tied to a named shift type
// (e.g. "Mon-Fri"), covering a set of weekdays.
type PatternRow struct {
	EmployeeID      string
	ShiftTypeName   string
	Days            []int // 1=Monday .. 7=Sunday
	FirstHalf       *bool
	Entry           TimeOfDay
	Exit            TimeOfDay
	CrossesMidnight bool
}
