package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodReportRequest asks for a reconciliation report for one branch and
// an inclusive date range.
type PeriodReportRequest struct {
	BranchID string `json:"branch_id"`
	From     string `json:"from"` // 2006-01-02
	To       string `json:"to"`
}

func (r PeriodReportRequest) Validate() error {
	if r.BranchID == "" {
		return ErrBranchRequired
	}
	from, err := time.Parse("2006-01-02", r.From)
	if err != nil {
		return fmt.Errorf("%w: from %q", ErrInvalidDateRange, r.From)
	}
	to, err := time.Parse("2006-01-02", r.To)
	if err != nil {
		return fmt.Errorf("%w: to %q", ErrInvalidDateRange, r.To)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: to precedes from", ErrInvalidDateRange)
	}
	return nil
}

// Range parses the validated request bounds into the given location.
func (r PeriodReportRequest) Range(loc *time.Location) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation("2006-01-02", r.From, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %q", ErrInvalidDateRange, r.From)
	}
	to, err := time.ParseInLocation("2006-01-02", r.To, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to %q", ErrInvalidDateRange, r.To)
	}
	return from, to, nil
}

// DayRecordResponse is the JSON shape of one reconciled day.
type DayRecordResponse struct {
	EmployeeID      string   `json:"employee_id"`
	Date            string   `json:"date"`
	Events          []string `json:"events,omitempty"`
	ScheduledEntry  *string  `json:"scheduled_entry,omitempty"`
	ScheduledExit   *string  `json:"scheduled_exit,omitempty"`
	CrossesMidnight bool     `json:"crosses_midnight,omitempty"`
	ScheduleOutcome string   `json:"schedule_outcome"`
	Classification  string   `json:"classification"`
	MinutesLate     int      `json:"minutes_late"`
	EarlyDeparture  bool     `json:"early_departure"`
	WorkedHours     string   `json:"worked_hours"`
	ExpectedHours   string   `json:"expected_hours"`
	BreakHours      string   `json:"break_hours"`
	LeaveCoverage   string   `json:"leave_coverage"`
	LeaveGrantID    string   `json:"leave_grant_id,omitempty"`
	LeaveDeducted   string   `json:"leave_deducted_hours"`
	Forgiven        bool     `json:"forgiven"`
	DeductionFlag   bool     `json:"deduction_flagged"`
}

// PeriodSummaryResponse is the JSON shape of one employee's period row.
type PeriodSummaryResponse struct {
	EmployeeID        string `json:"employee_id"`
	EmployeeName      string `json:"employee_name"`
	WorkedHours       string `json:"worked_hours"`
	ExpectedHours     string `json:"expected_hours"`
	LeaveDeducted     string `json:"leave_deducted_hours"`
	BreakHours        string `json:"break_hours"`
	LateCount         int    `json:"late_count"`
	DeductionCount    int    `json:"deduction_count"`
	Absences          int    `json:"absences"`
	JustifiedAbsences int    `json:"justified_absences"`
	RealAbsences      int    `json:"real_absences"`
	EarlyDepartures   int    `json:"early_departures"`
	Variance          string `json:"variance_hours"`
}

// ProblemResponse reports a day that could not be fully classified.
type ProblemResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
}

// PeriodReport is the full report payload handed to rendering layers.
type PeriodReport struct {
	ID          string                  `json:"id"`
	BranchID    string                  `json:"branch_id"`
	From        string                  `json:"from"`
	To          string                  `json:"to"`
	GeneratedAt string                  `json:"generated_at"`
	Days        []DayRecordResponse     `json:"days"`
	Summaries   []PeriodSummaryResponse `json:"summaries"`
	Problems    []ProblemResponse       `json:"problems,omitempty"`
}

// Hours renders a duration as decimal hours with two places, e.g. "8.25".
func Hours(d time.Duration) string {
	return decimal.NewFromInt(int64(d / time.Second)).
		Div(decimal.NewFromInt(3600)).
		StringFixed(2)
}

// SignedHours renders a duration with an explicit sign; exactly zero
// renders unsigned.
func SignedHours(d time.Duration) string {
	if d == 0 {
		return "0.00"
	}
	s := Hours(d)
	if d > 0 {
		return "+" + s
	}
	return s
}

// MapDayRecord converts an engine DayRecord to its response shape.
func MapDayRecord(r DayRecord) DayRecordResponse {
	resp := DayRecordResponse{
		EmployeeID:      r.EmployeeID,
		Date:            r.Date.Format("2006-01-02"),
		ScheduleOutcome: string(r.ScheduleOutcome),
		Classification:  string(r.Classification),
		MinutesLate:     r.MinutesLate,
		EarlyDeparture:  r.EarlyDeparture,
		WorkedHours:     Hours(r.Worked),
		ExpectedHours:   Hours(r.Expected),
		BreakHours:      Hours(r.BreakTime),
		LeaveCoverage:   string(r.LeaveCoverage),
		LeaveGrantID:    r.LeaveGrantID,
		LeaveDeducted:   Hours(r.LeaveDeducted),
		Forgiven:        r.Forgiven,
		DeductionFlag:   r.DeductionFlagged,
	}
	for _, e := range r.Events {
		resp.Events = append(resp.Events, e.Format("15:04"))
	}
	if r.Shift != nil {
		entry := r.Shift.Entry.String()
		exit := r.Shift.Exit.String()
		resp.ScheduledEntry = &entry
		resp.ScheduledExit = &exit
		resp.CrossesMidnight = r.Shift.CrossesMidnight
	}
	return resp
}

// MapPeriodSummary converts a PeriodSummary to its response shape.
func MapPeriodSummary(s PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		EmployeeID:        s.EmployeeID,
		EmployeeName:      s.EmployeeName,
		WorkedHours:       Hours(s.Worked),
		ExpectedHours:     Hours(s.Expected),
		LeaveDeducted:     Hours(s.LeaveDeducted),
		BreakHours:        Hours(s.BreakTime),
		LateCount:         s.LateCount,
		DeductionCount:    s.DeductionCount,
		Absences:          s.Absences,
		JustifiedAbsences: s.JustifiedAbsences,
		RealAbsences:      s.RealAbsences,
		EarlyDepartures:   s.EarlyDepartures,
		Variance:          SignedHours(s.Variance),
	}
}
