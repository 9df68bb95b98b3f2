package attendance

import (
	"fmt"
	"time"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/leave"
	"github.com/horizonte-hr/attendance-backend-go/internal/pkg/normalize"
)

// maxGrantSpanDays caps range expansion so one corrupt grant cannot blow
// up the working set.
const maxGrantSpanDays = 370

// expandGrants flattens approved date-range grants into per-date grants
// clipped to the reporting range. Inverted or malformed ranges are
// skipped and reported, never fatal. When two grants cover the same day
// the first one seen wins.
func (e *Engine) expandGrants(grants []leave.Grant, from, to time.Time) (map[dayKey]leave.DayGrant, []attendance.Problem) {
	var problems []attendance.Problem
	byDay := make(map[dayKey]leave.DayGrant)

	for _, g := range grants {
		if !g.Approved {
			continue
		}
		if g.From.IsZero() || g.To.IsZero() || g.To.Before(g.From) ||
			int(g.To.Sub(g.From).Hours()/24) > maxGrantSpanDays {
			problems = append(problems, attendance.Problem{
				EmployeeID: g.EmployeeID,
				Date:       g.From,
				Reason:     fmt.Sprintf("leave grant %s has an invalid date range, skipped", g.ID),
			})
			continue
		}

		typeKey := leave.Canonical(normalize.Key(g.LeaveType))
		for date := midnight(g.From.In(e.cfg.Location)); !date.After(g.To.In(e.cfg.Location)); date = date.AddDate(0, 0, 1) {
			if date.Before(from) || date.After(to) {
				continue
			}
			k := e.keyFor(g.EmployeeID, date)
			if _, exists := byDay[k]; exists {
				continue
			}
			byDay[k] = leave.DayGrant{
				GrantID:    g.ID,
				EmployeeID: g.EmployeeID,
				Date:       date,
				HalfDay:    g.HalfDay,
				TypeKey:    typeKey,
			}
		}
	}

	return byDay, problems
}

// adjustLeave applies an approved grant to one day record. Full-day leave
// zeroes expected hours and books the whole original value as deducted;
// half-day leave halves it. Leave types under the no-adjust policy keep
// expected hours intact and only flag the coverage for reporting.
func (e *Engine) adjustLeave(rec *attendance.DayRecord, grants map[dayKey]leave.DayGrant) {
	g, ok := grants[e.keyFor(rec.EmployeeID, rec.Date)]
	if !ok {
		return
	}

	rec.LeaveGrantID = g.GrantID
	coverage := attendance.CoverageFull
	if g.HalfDay {
		coverage = attendance.CoverageHalf
	}
	rec.LeaveCoverage = coverage

	if e.policies.For(g.TypeKey) == leave.PolicyNoAdjust {
		return
	}

	if g.HalfDay {
		deducted := rec.OriginalExpected / 2
		rec.LeaveDeducted = deducted
		rec.Expected = rec.OriginalExpected - deducted
		return
	}

	rec.LeaveDeducted = rec.OriginalExpected
	rec.Expected = 0
}
