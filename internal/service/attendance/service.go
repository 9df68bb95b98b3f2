package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/employee"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/leave"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/schedule"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.ScheduleRepository
	clockSource  attendance.ClockSource
	leaveSource  leave.GrantSource
	engine       *Engine
	cfg          attendance.Config
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
	clockSource attendance.ClockSource,
	leaveSource leave.GrantSource,
	cfg attendance.Config,
	policies leave.PolicyTable,
) attendance.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		clockSource:  clockSource,
		leaveSource:  leaveSource,
		engine:       NewEngine(cfg, policies),
		cfg:          cfg,
	}
}

// GeneratePeriodReport implements attendance.ReportService. It assembles
// the three input snapshots, hands them to the engine, and maps the
// result. All retrieval happens up front; the engine itself does no I/O,
// so a failed run is safe to retry wholesale.
func (s *ReportServiceImpl) GeneratePeriodReport(ctx context.Context, req attendance.PeriodReportRequest) (attendance.PeriodReport, error) {
	if err := req.Validate(); err != nil {
		return attendance.PeriodReport{}, err
	}

	from, to, err := req.Range(s.cfg.Location)
	if err != nil {
		return attendance.PeriodReport{}, err
	}

	employees, err := s.employeeRepo.ListByBranch(ctx, req.BranchID)
	if err != nil {
		return attendance.PeriodReport{}, fmt.Errorf("failed to list branch employees: %w", err)
	}
	if len(employees) == 0 {
		return attendance.PeriodReport{}, attendance.ErrEmptyRoster
	}

	overrides, err := s.scheduleRepo.ListOverrides(ctx, req.BranchID)
	if err != nil {
		return attendance.PeriodReport{}, fmt.Errorf("failed to list schedule overrides: %w", err)
	}
	patterns, err := s.scheduleRepo.ListPatterns(ctx, req.BranchID)
	if err != nil {
		return attendance.PeriodReport{}, fmt.Errorf("failed to list schedule patterns: %w", err)
	}

	// Fetch one day past the range so midnight-crossing shifts on the
	// last day can still find their exit events.
	events, err := s.clockSource.ListClockEvents(ctx, req.BranchID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return attendance.PeriodReport{}, fmt.Errorf("failed to fetch clock events: %w", err)
	}

	grants, err := s.leaveSource.ListGrants(ctx, req.BranchID, from, to)
	if err != nil {
		return attendance.PeriodReport{}, fmt.Errorf("failed to fetch leave grants: %w", err)
	}

	result := s.engine.Run(Snapshot{
		From:      from,
		To:        to,
		Employees: employees,
		Events:    events,
		Overrides: overrides,
		Patterns:  patterns,
		Grants:    grants,
	})

	slog.Info("attendance report generated",
		"branch_id", req.BranchID,
		"from", req.From,
		"to", req.To,
		"employees", len(employees),
		"days", len(result.Days),
		"problems", len(result.Problems),
	)

	return s.mapReport(req, result), nil
}

func (s *ReportServiceImpl) mapReport(req attendance.PeriodReportRequest, result Result) attendance.PeriodReport {
	report := attendance.PeriodReport{
		ID:          uuid.NewString(),
		BranchID:    req.BranchID,
		From:        req.From,
		To:          req.To,
		GeneratedAt: time.Now().In(s.cfg.Location).Format(time.RFC3339),
	}
	for _, d := range result.Days {
		report.Days = append(report.Days, attendance.MapDayRecord(d))
	}
	for _, sum := range result.Summaries {
		report.Summaries = append(report.Summaries, attendance.MapPeriodSummary(sum))
	}
	for _, p := range result.Problems {
		report.Problems = append(report.Problems, attendance.ProblemResponse{
			EmployeeID: p.EmployeeID,
			Date:       p.Date.Format("2006-01-02"),
			Reason:     p.Reason,
		})
	}
	return report
}
