package attendance

import (
	"time"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
)

// classify assigns the day's entry-time classification, late minutes,
// worked duration, and the early-departure flag. Runs after the midnight
// fix-up so the event list is already the logical shift.
func (e *Engine) classify(rec *attendance.DayRecord) {
	if rec.Shift == nil {
		rec.Classification = attendance.ClassNonWorkingDay
		return
	}
	if len(rec.Events) == 0 {
		rec.Classification = attendance.ClassAbsence
		return
	}

	if rec.Worked == 0 {
		rec.Worked = shiftDuration(rec.Events)
	}

	first := rec.Events[0]
	scheduledEntry := rec.Shift.Entry.At(rec.Date, e.cfg.Location)
	delta := e.deltaMinutes(first, scheduledEntry, rec.Shift.CrossesMidnight)

	if delta > 0 {
		rec.MinutesLate = delta
	}

	switch {
	case delta <= e.cfg.LateToleranceMinutes:
		rec.Classification = attendance.ClassOnTime
	case delta <= e.cfg.AbsenceThresholdMinutes:
		rec.Classification = attendance.ClassLate
	default:
		rec.Classification = attendance.ClassUnjustifiedAbsence
	}

	rec.EarlyDeparture = e.leftEarly(rec)
}

// deltaMinutes is the signed lateness of an event against a scheduled
// time. When the shift crosses midnight a naive delta beyond twelve hours
// is a day-boundary artifact and is folded back by a day.
func (e *Engine) deltaMinutes(actual, scheduled time.Time, crossesMidnight bool) int {
	delta := int(actual.Sub(scheduled) / time.Minute)
	if crossesMidnight {
		if delta > 12*60 {
			delta -= 24 * 60
		} else if delta < -12*60 {
			delta += 24 * 60
		}
	}
	return delta
}

// leftEarly flags departures ahead of the scheduled exit minus tolerance.
// A single clock event never counts: one scan proves presence, not a
// departure.
func (e *Engine) leftEarly(rec *attendance.DayRecord) bool {
	if len(rec.Events) < 2 {
		return false
	}

	scheduledExit := rec.Shift.Exit.At(rec.Date, e.cfg.Location)
	if rec.Shift.CrossesMidnight {
		scheduledExit = scheduledExit.Add(24 * time.Hour)
	}

	last := rec.Events[len(rec.Events)-1]
	delta := e.deltaMinutes(last, scheduledExit, rec.Shift.CrossesMidnight)
	return delta < -e.cfg.ExitToleranceMinutes
}

// rebuildLateCounters recomputes the rolling lateness sequence from
// scratch for one employee's date-ordered records. Every third cumulative
// late day carries the fixed-deduction flag. Must re-run whenever a later
// pipeline stage changes any day's classification.
func (e *Engine) rebuildLateCounters(days []attendance.DayRecord) {
	cumulative := 0
	for i := range days {
		days[i].DeductionFlagged = false
		if days[i].Classification == attendance.ClassLate {
			cumulative++
			if cumulative%3 == 0 {
				days[i].DeductionFlagged = true
			}
		}
	}
}
