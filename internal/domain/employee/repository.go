package employee

import "context"

// EmployeeRepository defines data access for the branch roster. Every
// active employee gets a row per reporting date even without clock events.
type EmployeeRepository interface {
	// ListByBranch returns the active employees of a branch ordered by code.
	ListByBranch(ctx context.Context, branchID string) ([]Employee, error)

	// GetByID retrieves a single employee.
	GetByID(ctx context.Context, id string) (Employee, error)
}
