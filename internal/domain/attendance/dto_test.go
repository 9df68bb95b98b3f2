package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHours(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.00"},
		{8 * time.Hour, "8.00"},
		{8*time.Hour + 15*time.Minute, "8.25"},
		{90 * time.Minute, "1.50"},
		{-2 * time.Hour, "-2.00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Hours(tc.d))
	}
}

func TestSignedHours(t *testing.T) {
	assert.Equal(t, "0.00", SignedHours(0))
	assert.Equal(t, "+1.50", SignedHours(90*time.Minute))
	assert.Equal(t, "-0.25", SignedHours(-15*time.Minute))
}

func TestPeriodReportRequestValidate(t *testing.T) {
	ok := PeriodReportRequest{BranchID: "b-1", From: "2024-06-01", To: "2024-06-15"}
	assert.NoError(t, ok.Validate())

	tests := []struct {
		name string
		req  PeriodReportRequest
		want error
	}{
		{"missing branch", PeriodReportRequest{From: "2024-06-01", To: "2024-06-15"}, ErrBranchRequired},
		{"bad from", PeriodReportRequest{BranchID: "b-1", From: "junk", To: "2024-06-15"}, ErrInvalidDateRange},
		{"bad to", PeriodReportRequest{BranchID: "b-1", From: "2024-06-01", To: "junk"}, ErrInvalidDateRange},
		{"inverted", PeriodReportRequest{BranchID: "b-1", From: "2024-06-15", To: "2024-06-01"}, ErrInvalidDateRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestMapDayRecordShiftFields(t *testing.T) {
	rec := DayRecord{
		EmployeeID:     "emp-1",
		Date:           time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		Events:         []time.Time{time.Date(2024, time.June, 3, 8, 10, 0, 0, time.UTC)},
		Classification: ClassOnTime,
		MinutesLate:    10,
		Worked:         8 * time.Hour,
		Expected:       8 * time.Hour,
	}
	resp := MapDayRecord(rec)

	assert.Equal(t, "2024-06-03", resp.Date)
	assert.Equal(t, []string{"08:10"}, resp.Events)
	assert.Nil(t, resp.ScheduledEntry)
	assert.Equal(t, "8.00", resp.WorkedHours)
	assert.Equal(t, "on_time", resp.Classification)
}
