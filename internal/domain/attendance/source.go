package attendance

import (
	"context"
	"time"
)

// ClockSource retrieves raw clock events from the upstream HR system.
// Events are deduplicated and zone-normalized by the implementation; the
// engine treats the returned slice as an immutable snapshot.
type ClockSource interface {
	ListClockEvents(ctx context.Context, branchID string, from, to time.Time) ([]ClockEvent, error)
}
