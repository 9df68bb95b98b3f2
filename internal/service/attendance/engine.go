package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/employee"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/leave"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/schedule"
)

// Snapshot is the complete, immutable input of one reconciliation run.
// The engine performs no I/O; collaborators assemble this first.
type Snapshot struct {
	From      time.Time // midnight, org-local, inclusive
	To        time.Time // midnight, org-local, inclusive
	Employees []employee.Employee
	Events    []attendance.ClockEvent
	Overrides []schedule.OverrideRow
	Patterns  []schedule.PatternRow
	Grants    []leave.Grant
}

// Result is the run output: the full employee-by-date grid in employee
// then date order, one summary per employee, and the days that could not
// be fully classified.
type Result struct {
	Days      []attendance.DayRecord
	Summaries []attendance.PeriodSummary
	Problems  []attendance.Problem
}

// Engine runs the reconciliation pipeline. It is a pure, deterministic
// batch computation: same snapshot in, same result out.
type Engine struct {
	cfg      attendance.Config
	policies leave.PolicyTable
}

func NewEngine(cfg attendance.Config, policies leave.PolicyTable) *Engine {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if policies == nil {
		policies = leave.DefaultPolicyTable()
	}
	return &Engine{cfg: cfg, policies: policies}
}

// Run executes the pipeline: grid, midnight fix-up, classification, break
// pairing, leave adjustment, forgiveness, absence reclassification,
// counter rebuild, aggregation.
func (e *Engine) Run(snap Snapshot) Result {
	var res Result

	idx := BuildScheduleIndex(snap.Overrides, snap.Patterns)
	grants, grantProblems := e.expandGrants(snap.Grants, snap.From, snap.To)
	res.Problems = append(res.Problems, grantProblems...)

	eventsByKey := e.groupEvents(snap.Events, snap.From, snap.To)

	for _, emp := range snap.Employees {
		days, probs := e.buildEmployeeDays(emp.ID, snap.From, snap.To, idx, eventsByKey)
		res.Problems = append(res.Problems, probs...)

		days = e.reconcileMidnight(days, eventsByKey)
		for i := range days {
			e.classify(&days[i])
			days[i].BreakTime = e.breakTime(days[i].Events)
			e.adjustLeave(&days[i], grants)
		}
		e.forgive(days)
		e.reclassifyAbsences(days, grants)
		e.rebuildLateCounters(days)

		res.Problems = append(res.Problems, e.collectProblems(days)...)
		res.Summaries = append(res.Summaries, e.aggregate(emp, days))
		res.Days = append(res.Days, days...)
	}

	return res
}

// dayKey identifies one employee-date cell of the grid.
type dayKey struct {
	EmployeeID string
	Date       string // 2006-01-02, org-local
}

func (e *Engine) keyFor(employeeID string, t time.Time) dayKey {
	return dayKey{EmployeeID: employeeID, Date: t.In(e.cfg.Location).Format("2006-01-02")}
}

// groupEvents buckets raw events by employee and local calendar date,
// sorted chronologically within each bucket. Events outside the range are
// kept one day past To so midnight-crossing shifts on the last day can
// still borrow their exit.
func (e *Engine) groupEvents(events []attendance.ClockEvent, from, to time.Time) map[dayKey][]time.Time {
	lower := from
	upper := to.AddDate(0, 0, 1)

	byKey := make(map[dayKey][]time.Time)
	for _, ev := range events {
		local := ev.At.In(e.cfg.Location)
		date := midnight(local)
		if date.Before(lower) || date.After(upper) {
			continue
		}
		k := e.keyFor(ev.EmployeeID, local)
		byKey[k] = append(byKey[k], local)
	}
	for k := range byKey {
		sort.Slice(byKey[k], func(i, j int) bool { return byKey[k][i].Before(byKey[k][j]) })
	}
	return byKey
}

// buildEmployeeDays creates the base day-record sequence for one employee,
// attaching events and resolving each date's shift.
func (e *Engine) buildEmployeeDays(employeeID string, from, to time.Time, idx *ScheduleIndex, events map[dayKey][]time.Time) ([]attendance.DayRecord, []attendance.Problem) {
	var problems []attendance.Problem
	var days []attendance.DayRecord

	// One extra trailing day so the reconciler can borrow exits for
	// midnight-crossing shifts ending after To; it is trimmed from the
	// grid before aggregation by marking it out of range.
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		rec := attendance.DayRecord{
			EmployeeID:     employeeID,
			Date:           date,
			Classification: attendance.ClassNonWorkingDay,
			LeaveCoverage:  attendance.CoverageNone,
		}

		evs := events[e.keyFor(employeeID, date)]
		if max := e.cfg.MaxEventsPerDay; max > 0 && len(evs) > max {
			problems = append(problems, attendance.Problem{
				EmployeeID: employeeID,
				Date:       date,
				Reason:     fmt.Sprintf("%d clock events exceed the per-day maximum of %d; extras dropped", len(evs), max),
			})
			evs = evs[:max]
		}
		rec.Events = append(rec.Events, evs...)

		r := idx.Resolve(employeeID, isoWeekday(date), isFirstHalf(date.Day()))
		rec.Shift = r.Shift
		rec.ScheduleOutcome = r.Outcome
		if r.Shift != nil {
			rec.OriginalExpected = r.Shift.Expected
			rec.Expected = r.Shift.Expected
		}

		days = append(days, rec)
	}

	// Trailing-day events are only visible to the reconciler through the
	// event map; the grid itself stays within [from, to].
	return days, problems
}

// collectProblems reports scheduled days without enough data to classify
// fully, per the user-visible failure contract.
func (e *Engine) collectProblems(days []attendance.DayRecord) []attendance.Problem {
	var problems []attendance.Problem
	for _, d := range days {
		if d.Shift == nil && len(d.Events) > 0 {
			problems = append(problems, attendance.Problem{
				EmployeeID: d.EmployeeID,
				Date:       d.Date,
				Reason:     fmt.Sprintf("clock events present but no schedule resolved (%s)", d.ScheduleOutcome),
			})
		}
	}
	return problems
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isoWeekday maps Go's Sunday-based weekday to ISO 1=Monday..7=Sunday.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
