package attendance

import (
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/schedule"
)

// indexKey identifies one resolvable schedule slot.
type indexKey struct {
	EmployeeID string
	Weekday    int // 1=Monday .. 7=Sunday
	FirstHalf  bool
}

// indexEntry keeps both candidate sources for a key; overrides always win
// at resolution time.
type indexEntry struct {
	override *schedule.ShiftDefinition
	pattern  *schedule.ShiftDefinition
}

// ScheduleIndex is the read-only lookup built once per run from the raw
// fortnightly schedule rows. At most one definition survives per key.
type ScheduleIndex struct {
	entries   map[indexKey]*indexEntry
	employees map[string]bool // employees that have any schedule row at all
}

// Resolution is the tagged outcome of a lookup, so callers can tell a free
// day from missing data.
type Resolution struct {
	Shift   *schedule.ShiftDefinition
	Outcome attendance.ScheduleOutcome
}

// BuildScheduleIndex runs a single pass over the raw rows. Rows with a
// weekday outside 1..7 are dropped; a nil FirstHalf fans out to both
// halves without overriding a half-specific row already in place.
func BuildScheduleIndex(overrides []schedule.OverrideRow, patterns []schedule.PatternRow) *ScheduleIndex {
	idx := &ScheduleIndex{
		entries:   make(map[indexKey]*indexEntry),
		employees: make(map[string]bool),
	}

	for _, row := range overrides {
		if row.Weekday < 1 || row.Weekday > 7 {
			continue
		}
		def := shiftFromTimes(row.Entry, row.Exit, row.CrossesMidnight)
		idx.employees[row.EmployeeID] = true
		for _, half := range halvesFor(row.FirstHalf) {
			e := idx.entry(indexKey{row.EmployeeID, row.Weekday, half})
			// A half-specific override beats an unrestricted one.
			if e.override == nil || row.FirstHalf != nil {
				e.override = def
			}
		}
	}

	for _, row := range patterns {
		idx.employees[row.EmployeeID] = true
		def := shiftFromTimes(row.Entry, row.Exit, row.CrossesMidnight)
		for _, day := range row.Days {
			if day < 1 || day > 7 {
				continue
			}
			for _, half := range halvesFor(row.FirstHalf) {
				e := idx.entry(indexKey{row.EmployeeID, day, half})
				if e.pattern == nil || row.FirstHalf != nil {
					e.pattern = def
				}
			}
		}
	}

	return idx
}

func (idx *ScheduleIndex) entry(k indexKey) *indexEntry {
	e, ok := idx.entries[k]
	if !ok {
		e = &indexEntry{}
		idx.entries[k] = e
	}
	return e
}

// Resolve returns the applicable shift for (employee, weekday, half).
// Priority: override for the half, then pattern for the half, then the
// other half's pattern as a general fallback, then absent.
func (idx *ScheduleIndex) Resolve(employeeID string, weekday int, firstHalf bool) Resolution {
	if !idx.employees[employeeID] {
		return Resolution{Outcome: attendance.OutcomeNoRows}
	}

	if e, ok := idx.entries[indexKey{employeeID, weekday, firstHalf}]; ok {
		if e.override != nil {
			return Resolution{Shift: e.override, Outcome: attendance.OutcomeResolved}
		}
		if e.pattern != nil {
			return Resolution{Shift: e.pattern, Outcome: attendance.OutcomeResolved}
		}
	}

	// Missing-half fallback: an employee loaded with only one half's data
	// must not silently drop out of the report.
	if e, ok := idx.entries[indexKey{employeeID, weekday, !firstHalf}]; ok && e.pattern != nil {
		return Resolution{Shift: e.pattern, Outcome: attendance.OutcomeOtherHalf}
	}

	return Resolution{Outcome: attendance.OutcomeNoWeekday}
}

func shiftFromTimes(entry, exit schedule.TimeOfDay, crossesMidnight bool) *schedule.ShiftDefinition {
	return &schedule.ShiftDefinition{
		Entry:           entry,
		Exit:            exit,
		CrossesMidnight: crossesMidnight,
		Expected:        schedule.ExpectedDuration(entry, exit, crossesMidnight),
	}
}

func halvesFor(firstHalf *bool) []bool {
	if firstHalf == nil {
		return []bool{true, false}
	}
	return []bool{*firstHalf}
}

// isFirstHalf reports whether a date falls in the first fortnight of its
// month (days 1-15).
func isFirstHalf(day int) bool {
	return day <= 15
}
