package employee

import "context"

// Repository - read-only directory access plus the row lock used to
// serialize per-employee leave mutations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetManager resolves the employee's direct line manager, or nil when
	// none is assigned.
	GetManager(ctx context.Context, employeeID string) (*Employee, error)
	// Lock acquires a row-level lock on the employee for the duration of the
	// surrounding transaction. Concurrent leave writes for the same employee
	// serialize behind it.
	Lock(ctx context.Context, id string) error
}
