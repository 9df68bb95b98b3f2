package schedule

import "context"

// ScheduleRepository defines data access for the raw fortnightly schedule
// table. Both row kinds are read once per reporting run; resolution
// priority between them is the engine's concern.
type ScheduleRepository interface {
	// ListOverrides returns day-specific schedule overrides for every
	// employee of the branch.
	ListOverrides(ctx context.Context, branchID string) ([]OverrideRow, error)

	// ListPatterns returns recurring weekly-pattern rows for every
	// employee of the branch.
	ListPatterns(ctx context.Context, branchID string) ([]PatternRow, error)
}
