package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/horizonte-hr/attendance-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// ListOverrides implements schedule.ScheduleRepository. Rows with an
// unparsable entry or exit time are skipped; one bad row never blocks a
// reporting run.
func (r *scheduleRepository) ListOverrides(ctx context.Context, branchID string) ([]schedule.OverrideRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT so.employee_id, so.weekday, so.is_first_half,
		       so.entry_time::text, so.exit_time::text, so.crosses_midnight
		FROM schedule_overrides so
		JOIN employees e ON e.id = so.employee_id
		WHERE e.branch_id = $1
		  AND e.deleted_at IS NULL
		ORDER BY so.employee_id, so.weekday
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule overrides: %w", err)
	}
	defer rows.Close()

	var out []schedule.OverrideRow
	for rows.Next() {
		var (
			row         schedule.OverrideRow
			entry, exit string
		)
		if err := rows.Scan(&row.EmployeeID, &row.Weekday, &row.FirstHalf, &entry, &exit, &row.CrossesMidnight); err != nil {
			return nil, fmt.Errorf("failed to scan schedule override: %w", err)
		}
		if row.Entry, err = schedule.ParseTimeOfDay(entry); err != nil {
			slog.Warn("skipping schedule override with bad entry time", "employee_id", row.EmployeeID, "value", entry)
			continue
		}
		if row.Exit, err = schedule.ParseTimeOfDay(exit); err != nil {
			slog.Warn("skipping schedule override with bad exit time", "employee_id", row.EmployeeID, "value", exit)
			continue
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schedule overrides: %w", err)
	}

	return out, nil
}

// ListPatterns implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListPatterns(ctx context.Context, branchID string) ([]schedule.PatternRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sp.employee_id, st.name, st.weekdays,
		       sp.is_first_half, sp.entry_time::text, sp.exit_time::text, sp.crosses_midnight
		FROM schedule_patterns sp
		JOIN shift_types st ON st.id = sp.shift_type_id
		JOIN employees e ON e.id = sp.employee_id
		WHERE e.branch_id = $1
		  AND e.deleted_at IS NULL
		ORDER BY sp.employee_id
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule patterns: %w", err)
	}
	defer rows.Close()

	var out []schedule.PatternRow
	for rows.Next() {
		var (
			row         schedule.PatternRow
			days        []int32
			entry, exit string
		)
		if err := rows.Scan(&row.EmployeeID, &row.ShiftTypeName, &days, &row.FirstHalf, &entry, &exit, &row.CrossesMidnight); err != nil {
			return nil, fmt.Errorf("failed to scan schedule pattern: %w", err)
		}
		if row.Entry, err = schedule.ParseTimeOfDay(entry); err != nil {
			slog.Warn("skipping schedule pattern with bad entry time", "employee_id", row.EmployeeID, "value", entry)
			continue
		}
		if row.Exit, err = schedule.ParseTimeOfDay(exit); err != nil {
			slog.Warn("skipping schedule pattern with bad exit time", "employee_id", row.EmployeeID, "value", exit)
			continue
		}
		for _, d := range days {
			row.Days = append(row.Days, int(d))
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schedule patterns: %w", err)
	}

	return out, nil
}
