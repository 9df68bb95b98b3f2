package attendance

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid reporting date range")
	ErrBranchRequired   = errors.New("branch_id is required")
	ErrEmptyRoster      = errors.New("branch has no active employees")
)
