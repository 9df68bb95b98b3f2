package attendance

import (
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/leave"
)

// reclassifyAbsences converts absences covered by an approved leave grant
// into justified absences, which the aggregator excludes from the real
// absence tally.
func (e *Engine) reclassifyAbsences(days []attendance.DayRecord, grants map[dayKey]leave.DayGrant) {
	for i := range days {
		rec := &days[i]
		if rec.Classification != attendance.ClassAbsence &&
			rec.Classification != attendance.ClassUnjustifiedAbsence {
			continue
		}

		g, ok := grants[e.keyFor(rec.EmployeeID, rec.Date)]
		if !ok {
			continue
		}

		rec.PriorClassification = rec.Classification
		rec.Classification = attendance.ClassJustifiedAbsence
		rec.LeaveGrantID = g.GrantID
		if g.HalfDay {
			rec.LeaveCoverage = attendance.CoverageHalf
		} else {
			rec.LeaveCoverage = attendance.CoverageFull
		}
	}
}
