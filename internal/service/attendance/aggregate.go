package attendance

import (
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/employee"
)

// aggregate reduces one employee's finished day records into the period
// summary row. Pure reduction: no record is mutated.
func (e *Engine) aggregate(emp employee.Employee, days []attendance.DayRecord) attendance.PeriodSummary {
	s := attendance.PeriodSummary{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
	}

	for _, d := range days {
		s.Worked += d.Worked
		s.Expected += d.OriginalExpected
		s.LeaveDeducted += d.LeaveDeducted
		s.BreakTime += d.BreakTime

		switch d.Classification {
		case attendance.ClassLate:
			s.LateCount++
		case attendance.ClassAbsence, attendance.ClassUnjustifiedAbsence:
			s.Absences++
		case attendance.ClassJustifiedAbsence:
			s.Absences++
			s.JustifiedAbsences++
		}
		if d.DeductionFlagged {
			s.DeductionCount++
		}
		if d.EarlyDeparture {
			s.EarlyDepartures++
		}
	}

	s.RealAbsences = s.Absences - s.JustifiedAbsences
	s.Variance = s.Worked - (s.Expected - s.LeaveDeducted)
	return s
}
