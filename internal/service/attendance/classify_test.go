package attendance

import (
	"testing"
	"time"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
)

func dayShift(t *testing.T, entry, exit string, crosses bool) *schedule.ShiftDefinition {
	t.Helper()
	e, x := tod(t, entry), tod(t, exit)
	return &schedule.ShiftDefinition{
		Entry:           e,
		Exit:            x,
		CrossesMidnight: crosses,
		Expected:        schedule.ExpectedDuration(e, x, crosses),
	}
}

func TestClassifyThresholds(t *testing.T) {
	e := newTestEngine()
	day := date(2024, time.June, 3)

	tests := []struct {
		name    string
		entry   time.Time
		want    attendance.Classification
		minutes int
	}{
		{"exactly on time", at(2024, time.June, 3, 8, 0), attendance.ClassOnTime, 0},
		{"early arrival", at(2024, time.June, 3, 7, 40), attendance.ClassOnTime, 0},
		{"within tolerance", at(2024, time.June, 3, 8, 15), attendance.ClassOnTime, 15},
		{"just past tolerance", at(2024, time.June, 3, 8, 16), attendance.ClassLate, 16},
		{"at absence threshold", at(2024, time.June, 3, 8, 30), attendance.ClassLate, 30},
		{"past absence threshold", at(2024, time.June, 3, 8, 31), attendance.ClassUnjustifiedAbsence, 31},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := attendance.DayRecord{
				Date:   day,
				Shift:  dayShift(t, "08:00", "16:00", false),
				Events: []time.Time{tc.entry, at(2024, time.June, 3, 16, 0)},
			}
			e.classify(&rec)
			assert.Equal(t, tc.want, rec.Classification)
			assert.Equal(t, tc.minutes, rec.MinutesLate)
		})
	}
}

func TestClassifySeverityMonotonic(t *testing.T) {
	e := newTestEngine()
	shift := dayShift(t, "08:00", "16:00", false)

	prev := -1
	for minute := 0; minute <= 60; minute++ {
		rec := attendance.DayRecord{
			Date:   date(2024, time.June, 3),
			Shift:  shift,
			Events: []time.Time{at(2024, time.June, 3, 8, 0).Add(time.Duration(minute) * time.Minute)},
		}
		e.classify(&rec)
		sev := rec.Classification.Severity()
		assert.GreaterOrEqual(t, sev, prev, "minute %d regressed in severity", minute)
		prev = sev
	}
}

func TestClassifyMidnightShiftEntryDelta(t *testing.T) {
	e := newTestEngine()
	rec := attendance.DayRecord{
		Date:  date(2024, time.June, 3),
		Shift: dayShift(t, "22:00", "06:00", true),
		Events: []time.Time{
			at(2024, time.June, 3, 22, 10),
			at(2024, time.June, 4, 6, 0),
		},
	}
	e.classify(&rec)
	assert.Equal(t, attendance.ClassOnTime, rec.Classification)
	assert.Equal(t, 10, rec.MinutesLate)
	assert.Equal(t, 7*time.Hour+50*time.Minute, rec.Worked)
	assert.False(t, rec.EarlyDeparture)
}

func TestClassifyNoShiftAndNoEvents(t *testing.T) {
	e := newTestEngine()

	free := attendance.DayRecord{Date: date(2024, time.June, 3)}
	e.classify(&free)
	assert.Equal(t, attendance.ClassNonWorkingDay, free.Classification)

	absent := attendance.DayRecord{
		Date:  date(2024, time.June, 3),
		Shift: dayShift(t, "08:00", "16:00", false),
	}
	e.classify(&absent)
	assert.Equal(t, attendance.ClassAbsence, absent.Classification)
	assert.Equal(t, time.Duration(0), absent.Worked)
}

func TestRebuildLateCountersEveryThird(t *testing.T) {
	e := newTestEngine()
	days := make([]attendance.DayRecord, 7)
	for i := range days {
		days[i].Classification = attendance.ClassLate
	}
	days[3].Classification = attendance.ClassOnTime

	e.rebuildLateCounters(days)

	var flagged []int
	for i, d := range days {
		if d.DeductionFlagged {
			flagged = append(flagged, i)
		}
	}
	// Lates land on indices 0,1,2,4,5,6; the 3rd and 6th cumulative lates
	// are indices 2 and 6.
	assert.Equal(t, []int{2, 6}, flagged)
}

func TestRebuildLateCountersClearsStaleFlags(t *testing.T) {
	e := newTestEngine()
	days := []attendance.DayRecord{
		{Classification: attendance.ClassOnTime, DeductionFlagged: true},
		{Classification: attendance.ClassLate, DeductionFlagged: true},
	}
	e.rebuildLateCounters(days)
	assert.False(t, days[0].DeductionFlagged)
	assert.False(t, days[1].DeductionFlagged)
}
