package attendance

import (
	"context"
)

// ReportService defines the reconciliation entry point used by handlers
// and exporters.
type ReportService interface {
	// GeneratePeriodReport fetches the three input snapshots (clock
	// events, schedule rows, leave grants), runs the reconciliation
	// pipeline, and returns the rendered report.
	GeneratePeriodReport(ctx context.Context, req PeriodReportRequest) (PeriodReport, error)
}
