package attendance

import (
	"time"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/schedule"
)

// ClockEvent is a raw clock-machine event, time-zone-normalized to the
// organization's local zone by the retrieval layer.
type ClockEvent struct {
	EmployeeID string
	At         time.Time
}

// Classification is the terminal per-day attendance state.
type Classification string

const (
	ClassOnTime             Classification = "on_time"
	ClassLate               Classification = "late"
	ClassUnjustifiedAbsence Classification = "unjustified_absence"
	ClassAbsence            Classification = "absence"
	ClassJustifiedAbsence   Classification = "justified_absence"
	ClassNonWorkingDay      Classification = "non_working_day"
)

// Severity orders entry-time classifications from least to most severe.
// Used by tests to assert threshold monotonicity.
func (c Classification) Severity() int {
	switch c {
	case ClassOnTime:
		return 0
	case ClassLate:
		return 1
	case ClassUnjustifiedAbsence:
		return 2
	default:
		return -1
	}
}

// ScheduleOutcome tags how (or why not) a day's shift was resolved, so
// callers can tell a genuinely free day from missing schedule data.
type ScheduleOutcome string

const (
	OutcomeResolved     ScheduleOutcome = "resolved"
	OutcomeOtherHalf    ScheduleOutcome = "resolved_other_half"
	OutcomeNoRows       ScheduleOutcome = "no_schedule_rows"
	OutcomeNoWeekday    ScheduleOutcome = "no_weekday_schedule"
)

// LeaveCoverage describes how much of a day an approved leave grant covers.
type LeaveCoverage string

const (
	CoverageNone LeaveCoverage = "none"
	CoverageHalf LeaveCoverage = "half"
	CoverageFull LeaveCoverage = "full"
)

// DayRecord is the unit of work: one row per employee per calendar date in
// the reporting range. Created empty, populated through the pipeline,
// never deleted.
type DayRecord struct {
	EmployeeID string
	Date       time.Time // midnight, org-local

	Events          []time.Time // chronological, capped at Config.MaxEventsPerDay
	Shift           *schedule.ShiftDefinition
	ScheduleOutcome ScheduleOutcome

	Classification Classification
	MinutesLate    int
	EarlyDeparture bool

	Worked           time.Duration
	OriginalExpected time.Duration
	Expected         time.Duration // post-leave adjustment
	BreakTime        time.Duration

	LeaveCoverage LeaveCoverage
	LeaveGrantID  string
	LeaveDeducted time.Duration

	// Forgiveness / reclassification audit trail.
	Forgiven            bool
	PriorClassification Classification
	PriorMinutesLate    int

	// Every third cumulative late day in the period triggers a fixed
	// payroll deduction.
	DeductionFlagged bool
}

// FirstEvent returns the earliest clock event of the day, if any.
func (r *DayRecord) FirstEvent() (time.Time, bool) {
	if len(r.Events) == 0 {
		return time.Time{}, false
	}
	return r.Events[0], true
}

// LastEvent returns the latest clock event of the day, if any.
func (r *DayRecord) LastEvent() (time.Time, bool) {
	if len(r.Events) == 0 {
		return time.Time{}, false
	}
	return r.Events[len(r.Events)-1], true
}

// PeriodSummary is the per-employee reduction over the period's day
// records. Never mutated after creation.
type PeriodSummary struct {
	EmployeeID   string
	EmployeeName string

	Worked        time.Duration
	Expected      time.Duration // sum of original (pre-leave) expected hours
	LeaveDeducted time.Duration
	BreakTime     time.Duration

	LateCount         int // excludes forgiven days
	DeductionCount    int // every-third-late flags
	Absences          int // raw: absence + unjustified + justified
	JustifiedAbsences int
	RealAbsences      int // raw minus justified
	EarlyDepartures   int

	// Variance = Worked - (Expected - LeaveDeducted). Negative when the
	// employee worked less than the leave-adjusted expectation.
	Variance time.Duration
}

// Problem reports a day that could not be fully classified, without
// blocking the rest of the run.
type Problem struct {
	EmployeeID string
	Date       time.Time
	Reason     string
}
