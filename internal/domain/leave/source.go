package leave

import (
	"context"
	"time"
)

// GrantSource retrieves leave grants from the upstream HR system. The
// caller receives a stable snapshot; retries and timeouts are the
// implementation's concern.
type GrantSource interface {
	ListGrants(ctx context.Context, branchID string, from, to time.Time) ([]Grant, error)
}
