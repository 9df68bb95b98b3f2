package attendance

import "time"

// Config carries the reconciliation thresholds. It is built once from the
// application configuration and passed by value into the engine; nothing
// mutates it after that.
type Config struct {
	// Entry-time classification thresholds, in minutes late relative to
	// the scheduled entry. Delta <= LateTolerance is on time;
	// LateTolerance < delta <= AbsenceThreshold is late; beyond that the
	// day is an unjustified absence.
	LateToleranceMinutes    int
	AbsenceThresholdMinutes int

	// ExitToleranceMinutes is how many minutes before the scheduled exit
	// a last clock event may fall without counting as an early departure.
	ExitToleranceMinutes int

	// MidnightGraceMinutes is the window after the scheduled exit of a
	// midnight-crossing shift during which next-day events still belong
	// to the prior day's shift.
	MidnightGraceMinutes int

	// MinBreakMinutes filters duplicate/noise scans out of break pairing.
	MinBreakMinutes int

	// MaxEventsPerDay bounds the per-day event list; extra events are
	// dropped and reported as a problem.
	MaxEventsPerDay int

	// ForgiveUnjustifiedAbsence extends the worked-enough-hours rule to
	// days classified as unjustified absences.
	ForgiveUnjustifiedAbsence bool

	// Location is the organization's local zone; all dates and scheduled
	// times are anchored in it.
	Location *time.Location
}

func DefaultConfig() Config {
	return Config{
		LateToleranceMinutes:    15,
		AbsenceThresholdMinutes: 30,
		ExitToleranceMinutes:    15,
		MidnightGraceMinutes:    59,
		MinBreakMinutes:         5,
		MaxEventsPerDay:         9,
		Location:                time.Local,
	}
}

func (c Config) LateTolerance() time.Duration {
	return time.Duration(c.LateToleranceMinutes) * time.Minute
}

func (c Config) ExitTolerance() time.Duration {
	return time.Duration(c.ExitToleranceMinutes) * time.Minute
}

func (c Config) MidnightGrace() time.Duration {
	return time.Duration(c.MidnightGraceMinutes) * time.Minute
}

func (c Config) MinBreak() time.Duration {
	return time.Duration(c.MinBreakMinutes) * time.Minute
}
