package attendance

import (
	"testing"
	"time"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandGrantsClipsAndApproves(t *testing.T) {
	e := newTestEngine()
	from, to := date(2024, time.June, 3), date(2024, time.June, 7)

	grants, problems := e.expandGrants([]leave.Grant{
		{ID: "g-approved", EmployeeID: "emp-1", From: date(2024, time.June, 1), To: date(2024, time.June, 4), LeaveType: "Vacation", Approved: true},
		{ID: "g-pending", EmployeeID: "emp-1", From: date(2024, time.June, 6), To: date(2024, time.June, 6), LeaveType: "Vacation"},
	}, from, to)

	assert.Empty(t, problems)
	// June 1-2 fall before the range and are clipped.
	assert.Len(t, grants, 2)
	g, ok := grants[e.keyFor("emp-1", date(2024, time.June, 3))]
	require.True(t, ok)
	assert.Equal(t, "g-approved", g.GrantID)
	assert.Equal(t, "vacation", g.TypeKey)

	_, ok = grants[e.keyFor("emp-1", date(2024, time.June, 6))]
	assert.False(t, ok, "unapproved grant must not expand")
}

func TestExpandGrantsInvalidRange(t *testing.T) {
	e := newTestEngine()
	from, to := date(2024, time.June, 3), date(2024, time.June, 7)

	grants, problems := e.expandGrants([]leave.Grant{
		{ID: "g-inverted", EmployeeID: "emp-1", From: date(2024, time.June, 5), To: date(2024, time.June, 4), Approved: true},
		{ID: "g-zero", EmployeeID: "emp-1", Approved: true},
		{ID: "g-huge", EmployeeID: "emp-1", From: date(2023, time.January, 1), To: date(2024, time.June, 30), Approved: true},
	}, from, to)

	assert.Empty(t, grants)
	assert.Len(t, problems, 3)
}

func TestExpandGrantsFirstWinsOnOverlap(t *testing.T) {
	e := newTestEngine()
	day := date(2024, time.June, 3)

	grants, _ := e.expandGrants([]leave.Grant{
		{ID: "g-1", EmployeeID: "emp-1", From: day, To: day, LeaveType: "vacation", Approved: true},
		{ID: "g-2", EmployeeID: "emp-1", From: day, To: day, LeaveType: "sick leave", Approved: true},
	}, day, day)

	g := grants[e.keyFor("emp-1", day)]
	assert.Equal(t, "g-1", g.GrantID)
}

func TestAdjustLeaveFullDay(t *testing.T) {
	e := newTestEngine()
	rec := attendance.DayRecord{
		EmployeeID:       "emp-1",
		Date:             date(2024, time.June, 3),
		OriginalExpected: 8 * time.Hour,
		Expected:         8 * time.Hour,
	}
	grants := map[dayKey]leave.DayGrant{
		e.keyFor("emp-1", rec.Date): {GrantID: "g-1", TypeKey: "vacation"},
	}

	e.adjustLeave(&rec, grants)

	assert.Equal(t, attendance.CoverageFull, rec.LeaveCoverage)
	assert.Equal(t, time.Duration(0), rec.Expected)
	assert.Equal(t, 8*time.Hour, rec.LeaveDeducted)
	assert.Equal(t, 8*time.Hour, rec.OriginalExpected)
}

func TestAdjustLeaveHalfDay(t *testing.T) {
	e := newTestEngine()
	rec := attendance.DayRecord{
		EmployeeID:       "emp-1",
		Date:             date(2024, time.June, 3),
		OriginalExpected: 9 * time.Hour,
		Expected:         9 * time.Hour,
	}
	grants := map[dayKey]leave.DayGrant{
		e.keyFor("emp-1", rec.Date): {GrantID: "g-1", TypeKey: "sick leave", HalfDay: true},
	}

	e.adjustLeave(&rec, grants)

	assert.Equal(t, attendance.CoverageHalf, rec.LeaveCoverage)
	assert.Equal(t, 4*time.Hour+30*time.Minute, rec.Expected)
	assert.Equal(t, 4*time.Hour+30*time.Minute, rec.LeaveDeducted)
}

func TestAdjustLeaveNoAdjustPolicy(t *testing.T) {
	e := newTestEngine()
	rec := attendance.DayRecord{
		EmployeeID:       "emp-1",
		Date:             date(2024, time.June, 3),
		OriginalExpected: 8 * time.Hour,
		Expected:         8 * time.Hour,
	}
	grants := map[dayKey]leave.DayGrant{
		e.keyFor("emp-1", rec.Date): {GrantID: "g-1", TypeKey: "unpaid leave"},
	}

	e.adjustLeave(&rec, grants)

	assert.Equal(t, attendance.CoverageFull, rec.LeaveCoverage)
	assert.Equal(t, 8*time.Hour, rec.Expected, "no-adjust types keep expected hours")
	assert.Equal(t, time.Duration(0), rec.LeaveDeducted)
	assert.Equal(t, "g-1", rec.LeaveGrantID)
}

func TestReclassifyAbsencesWithGrant(t *testing.T) {
	e := newTestEngine()
	days := []attendance.DayRecord{
		{EmployeeID: "emp-1", Date: date(2024, time.June, 3), Classification: attendance.ClassAbsence},
		{EmployeeID: "emp-1", Date: date(2024, time.June, 4), Classification: attendance.ClassUnjustifiedAbsence},
		{EmployeeID: "emp-1", Date: date(2024, time.June, 5), Classification: attendance.ClassOnTime},
	}
	grants := map[dayKey]leave.DayGrant{
		e.keyFor("emp-1", days[0].Date): {GrantID: "g-1"},
		e.keyFor("emp-1", days[1].Date): {GrantID: "g-1", HalfDay: true},
		e.keyFor("emp-1", days[2].Date): {GrantID: "g-1"},
	}

	e.reclassifyAbsences(days, grants)

	assert.Equal(t, attendance.ClassJustifiedAbsence, days[0].Classification)
	assert.Equal(t, attendance.ClassAbsence, days[0].PriorClassification)
	assert.Equal(t, attendance.CoverageFull, days[0].LeaveCoverage)

	assert.Equal(t, attendance.ClassJustifiedAbsence, days[1].Classification)
	assert.Equal(t, attendance.CoverageHalf, days[1].LeaveCoverage)

	// A worked day is never reclassified.
	assert.Equal(t, attendance.ClassOnTime, days[2].Classification)
}

func TestForgiveRequiresEnoughWork(t *testing.T) {
	e := newTestEngine()
	days := []attendance.DayRecord{
		{Classification: attendance.ClassLate, MinutesLate: 20, Worked: 9 * time.Hour, Expected: 8 * time.Hour},
		{Classification: attendance.ClassLate, MinutesLate: 25, Worked: 7 * time.Hour, Expected: 8 * time.Hour},
		{Classification: attendance.ClassUnjustifiedAbsence, Worked: 9 * time.Hour, Expected: 8 * time.Hour},
	}

	e.forgive(days)

	assert.Equal(t, attendance.ClassOnTime, days[0].Classification)
	assert.True(t, days[0].Forgiven)
	assert.Equal(t, 0, days[0].MinutesLate)
	assert.Equal(t, 20, days[0].PriorMinutesLate)

	assert.Equal(t, attendance.ClassLate, days[1].Classification)
	assert.False(t, days[1].Forgiven)

	// Unjustified absences are out of scope unless enabled.
	assert.Equal(t, attendance.ClassUnjustifiedAbsence, days[2].Classification)
}

func TestForgiveUnjustifiedAbsenceWhenEnabled(t *testing.T) {
	cfg := attendance.DefaultConfig()
	cfg.Location = time.UTC
	cfg.ForgiveUnjustifiedAbsence = true
	e := NewEngine(cfg, nil)

	days := []attendance.DayRecord{
		{Classification: attendance.ClassUnjustifiedAbsence, MinutesLate: 45, Worked: 8 * time.Hour, Expected: 8 * time.Hour},
	}
	e.forgive(days)

	assert.Equal(t, attendance.ClassOnTime, days[0].Classification)
	assert.Equal(t, attendance.ClassUnjustifiedAbsence, days[0].PriorClassification)
}
