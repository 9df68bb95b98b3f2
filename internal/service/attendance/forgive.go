package attendance

import (
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
)

// forgive reclassifies late days as on time when the employee still
// worked at least the leave-adjusted expected hours. The pre-forgiveness
// classification and minutes survive for audit. Callers must rebuild the
// rolling lateness counters afterwards, since later days' cumulative
// counts depend on every earlier classification.
func (e *Engine) forgive(days []attendance.DayRecord) {
	for i := range days {
		rec := &days[i]

		eligible := rec.Classification == attendance.ClassLate ||
			(e.cfg.ForgiveUnjustifiedAbsence && rec.Classification == attendance.ClassUnjustifiedAbsence)
		if !eligible {
			continue
		}
		if rec.Worked < rec.Expected {
			continue
		}

		rec.PriorClassification = rec.Classification
		rec.PriorMinutesLate = rec.MinutesLate
		rec.Classification = attendance.ClassOnTime
		rec.MinutesLate = 0
		rec.Forgiven = true
	}
}
