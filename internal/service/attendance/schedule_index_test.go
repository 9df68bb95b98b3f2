package attendance

import (
	"testing"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveOverrideBeatsPattern(t *testing.T) {
	idx := BuildScheduleIndex(
		[]schedule.OverrideRow{{
			EmployeeID: "emp-1", Weekday: 1,
			Entry: tod(t, "10:00"), Exit: tod(t, "18:00"),
		}},
		[]schedule.PatternRow{{
			EmployeeID: "emp-1", Days: []int{1, 2, 3},
			Entry: tod(t, "08:00"), Exit: tod(t, "16:00"),
		}},
	)

	r := idx.Resolve("emp-1", 1, true)
	require.NotNil(t, r.Shift)
	assert.Equal(t, attendance.OutcomeResolved, r.Outcome)
	assert.Equal(t, "10:00", r.Shift.Entry.String())

	// Tuesday has no override, so the pattern applies.
	r = idx.Resolve("emp-1", 2, true)
	require.NotNil(t, r.Shift)
	assert.Equal(t, "08:00", r.Shift.Entry.String())
}

func TestResolveHalfSpecificOverrideBeatsUnrestricted(t *testing.T) {
	idx := BuildScheduleIndex(
		[]schedule.OverrideRow{
			{EmployeeID: "emp-1", Weekday: 1, Entry: tod(t, "08:00"), Exit: tod(t, "16:00")},
			{EmployeeID: "emp-1", Weekday: 1, FirstHalf: boolPtr(false), Entry: tod(t, "12:00"), Exit: tod(t, "20:00")},
		},
		nil,
	)

	first := idx.Resolve("emp-1", 1, true)
	require.NotNil(t, first.Shift)
	assert.Equal(t, "08:00", first.Shift.Entry.String())

	second := idx.Resolve("emp-1", 1, false)
	require.NotNil(t, second.Shift)
	assert.Equal(t, "12:00", second.Shift.Entry.String())
}

func TestResolveOtherHalfFallback(t *testing.T) {
	idx := BuildScheduleIndex(nil, []schedule.PatternRow{{
		EmployeeID: "emp-1", Days: []int{1}, FirstHalf: boolPtr(true),
		Entry: tod(t, "08:00"), Exit: tod(t, "16:00"),
	}})

	r := idx.Resolve("emp-1", 1, false)
	require.NotNil(t, r.Shift)
	assert.Equal(t, attendance.OutcomeOtherHalf, r.Outcome)
}

func TestResolveOutcomes(t *testing.T) {
	idx := BuildScheduleIndex(nil, []schedule.PatternRow{{
		EmployeeID: "emp-1", Days: []int{1, 2, 3, 4, 5},
		Entry: tod(t, "08:00"), Exit: tod(t, "16:00"),
	}})

	assert.Equal(t, attendance.OutcomeNoRows, idx.Resolve("emp-ghost", 1, true).Outcome)

	r := idx.Resolve("emp-1", 6, true)
	assert.Nil(t, r.Shift)
	assert.Equal(t, attendance.OutcomeNoWeekday, r.Outcome)
}

func TestBuildScheduleIndexDropsInvalidWeekdays(t *testing.T) {
	idx := BuildScheduleIndex(
		[]schedule.OverrideRow{{EmployeeID: "emp-1", Weekday: 0, Entry: tod(t, "08:00"), Exit: tod(t, "16:00")}},
		[]schedule.PatternRow{{EmployeeID: "emp-1", Days: []int{8, 3}, Entry: tod(t, "09:00"), Exit: tod(t, "17:00")}},
	)

	assert.Nil(t, idx.Resolve("emp-1", 1, true).Shift)
	require.NotNil(t, idx.Resolve("emp-1", 3, true).Shift)
}

func TestIsFirstHalf(t *testing.T) {
	assert.True(t, isFirstHalf(1))
	assert.True(t, isFirstHalf(15))
	assert.False(t, isFirstHalf(16))
	assert.False(t, isFirstHalf(31))
}
