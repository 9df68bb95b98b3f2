package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

// ExportService renders a finished period report into downloadable
// formats. Rendering is a pure formatting concern: nothing here changes
// classifications or hours.
type ExportService interface {
	// ReportToXLSX renders the report as a two-sheet workbook (per-day
	// detail plus per-employee summary) and suggests a filename.
	ReportToXLSX(report attendance.PeriodReport) (*bytes.Buffer, string, error)

	// ReportToCSV renders the summary rows as CSV.
	ReportToCSV(report attendance.PeriodReport) (*bytes.Buffer, string, error)
}

type exportServiceImpl struct{}

func NewExportService() ExportService {
	return &exportServiceImpl{}
}

var dayHeaders = []string{
	"Employee", "Date", "Events", "Scheduled Entry", "Scheduled Exit",
	"Classification", "Minutes Late", "Early Departure", "Worked Hours",
	"Expected Hours", "Break Hours", "Leave Coverage", "Leave Deducted",
	"Forgiven", "Deduction",
}

var summaryHeaders = []string{
	"Employee", "Name", "Worked Hours", "Expected Hours", "Leave Deducted",
	"Break Hours", "Late Days", "Deductions", "Absences", "Justified",
	"Real Absences", "Early Departures", "Variance",
}

// ReportToXLSX implements ExportService.
func (s *exportServiceImpl) ReportToXLSX(report attendance.PeriodReport) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	const summarySheet = "Summary"
	const daysSheet = "Days"

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, "", fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(daysSheet); err != nil {
		return nil, "", fmt.Errorf("failed to create days sheet: %w", err)
	}

	if err := writeRow(f, summarySheet, 1, toAny(summaryHeaders)); err != nil {
		return nil, "", err
	}
	for i, row := range report.Summaries {
		cells := []any{
			row.EmployeeID, row.EmployeeName, row.WorkedHours, row.ExpectedHours,
			row.LeaveDeducted, row.BreakHours, row.LateCount, row.DeductionCount,
			row.Absences, row.JustifiedAbsences, row.RealAbsences,
			row.EarlyDepartures, row.Variance,
		}
		if err := writeRow(f, summarySheet, i+2, cells); err != nil {
			return nil, "", err
		}
	}

	if err := writeRow(f, daysSheet, 1, toAny(dayHeaders)); err != nil {
		return nil, "", err
	}
	for i, day := range report.Days {
		cells := []any{
			day.EmployeeID, day.Date, joinEvents(day.Events),
			deref(day.ScheduledEntry), deref(day.ScheduledExit),
			day.Classification, day.MinutesLate, day.EarlyDeparture,
			day.WorkedHours, day.ExpectedHours, day.BreakHours,
			day.LeaveCoverage, day.LeaveDeducted, day.Forgiven, day.DeductionFlag,
		}
		if err := writeRow(f, daysSheet, i+2, cells); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_%s_%s_%s.xlsx", report.BranchID, report.From, report.To)
	return buf, filename, nil
}

// ReportToCSV implements ExportService.
func (s *exportServiceImpl) ReportToCSV(report attendance.PeriodReport) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(summaryHeaders); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range report.Summaries {
		record := []string{
			row.EmployeeID, row.EmployeeName, row.WorkedHours, row.ExpectedHours,
			row.LeaveDeducted, row.BreakHours,
			strconv.Itoa(row.LateCount), strconv.Itoa(row.DeductionCount),
			strconv.Itoa(row.Absences), strconv.Itoa(row.JustifiedAbsences),
			strconv.Itoa(row.RealAbsences), strconv.Itoa(row.EarlyDepartures),
			row.Variance,
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	filename := fmt.Sprintf("attendance_%s_%s_%s.csv", report.BranchID, report.From, report.To)
	return &buf, filename, nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", row, sheet, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func joinEvents(events []string) string {
	var out string
	for i, e := range events {
		if i > 0 {
			out += " "
		}
		out += e
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
