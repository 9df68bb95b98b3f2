package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/employee"
)

// HandleError maps domain errors onto HTTP responses. Anything unmapped
// is a 500 with the detail kept in the log, not the body.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, attendance.ErrInvalidDateRange),
		errors.Is(err, attendance.ErrBranchRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrEmptyRoster),
		errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "Internal server error")
	}
}
