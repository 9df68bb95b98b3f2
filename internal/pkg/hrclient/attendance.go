package hrclient

import (
	"context"
	"net/url"
	"time"

	"github.com/horizonte-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/horizonte-hr/attendance-backend-go/internal/domain/leave"
)

// timestampLayouts covers the formats the upstream clock machines have
// been observed to emit.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ListClockEvents implements attendance.ClockSource. Events with an
// unparsable timestamp are dropped with a warning; duplicates (same
// employee, same second) collapse to one event.
func (c *Client) ListClockEvents(ctx context.Context, branchID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	query := url.Values{}
	query.Set("branch_id", branchID)
	query.Set("from", from.Format("2006-01-02"))
	query.Set("to", to.Format("2006-01-02"))

	var resp clockEventsResponse
	if err := c.getJSON(ctx, "/v1/clock-events", query, &resp); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(resp.Events))
	out := make([]attendance.ClockEvent, 0, len(resp.Events))
	for _, dto := range resp.Events {
		at, ok := c.parseTimestamp(dto.Timestamp)
		if !ok {
			c.logger.Warn("dropping clock event with bad timestamp",
				"employee_id", dto.EmployeeID, "timestamp", dto.Timestamp)
			continue
		}
		key := dto.EmployeeID + "|" + at.Format(time.RFC3339)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, attendance.ClockEvent{EmployeeID: dto.EmployeeID, At: at})
	}
	return out, nil
}

// ListGrants implements leave.GrantSource. Grants with malformed dates
// are kept with zero times; the engine skips and reports them.
func (c *Client) ListGrants(ctx context.Context, branchID string, from, to time.Time) ([]leave.Grant, error) {
	query := url.Values{}
	query.Set("branch_id", branchID)
	query.Set("from", from.Format("2006-01-02"))
	query.Set("to", to.Format("2006-01-02"))

	var resp leaveGrantsResponse
	if err := c.getJSON(ctx, "/v1/leave-grants", query, &resp); err != nil {
		return nil, err
	}

	out := make([]leave.Grant, 0, len(resp.Grants))
	for _, dto := range resp.Grants {
		fromDate, _ := time.ParseInLocation("2006-01-02", dto.FromDate, c.loc)
		toDate, _ := time.ParseInLocation("2006-01-02", dto.ToDate, c.loc)
		out = append(out, leave.Grant{
			ID:         dto.ID,
			EmployeeID: dto.EmployeeID,
			From:       fromDate,
			To:         toDate,
			LeaveType:  dto.LeaveType,
			HalfDay:    dto.IsHalfDay,
			Approved:   dto.Approved,
		})
	}
	return out, nil
}

func (c *Client) parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, c.loc); err == nil {
			return t.In(c.loc), true
		}
	}
	return time.Time{}, false
}
