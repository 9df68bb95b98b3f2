package http

import (
	"fmt"
	"net/http"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/horizonte-hr/attendance-backend-go/internal/service/export"
)

type ReportHandler interface {
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
	ExportAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService attendance.ReportService
	exportService export.ExportService
}

func NewReportHandler(reportService attendance.ReportService, exportService export.ExportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		exportService: exportService,
	}
}

func requestFromQuery(r *http.Request) attendance.PeriodReportRequest {
	q := r.URL.Query()
	return attendance.PeriodReportRequest{
		BranchID: q.Get("branch_id"),
		From:     q.Get("from"),
		To:       q.Get("to"),
	}
}

// GetAttendanceReport implements ReportHandler.
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req := requestFromQuery(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.reportService.GeneratePeriodReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ExportAttendanceReport implements ReportHandler. Streams the rendered
// file; format defaults to xlsx.
func (h *reportHandlerImpl) ExportAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req := requestFromQuery(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		response.BadRequest(w, fmt.Sprintf("unsupported export format %q", format), nil)
		return
	}

	report, err := h.reportService.GeneratePeriodReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch format {
	case "xlsx":
		out, filename, err := h.exportService.ReportToXLSX(report)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		writeDownload(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, out.Bytes())
	case "csv":
		out, filename, err := h.exportService.ReportToCSV(report)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		writeDownload(w, "text/csv", filename, out.Bytes())
	}
}

func writeDownload(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
