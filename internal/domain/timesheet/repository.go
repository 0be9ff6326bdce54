package timesheet

import "context"

// Repository - interface for timesheets table. (employee_id, year, month)
// carries a uniqueness constraint; Upsert relies on it so a lost generation
// race degrades to an update of identical values.
type Repository interface {
	GetByID(ctx context.Context, id string) (Timesheet, error)
	GetByKey(ctx context.Context, employeeID string, year, month int) (*Timesheet, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]Timesheet, error)
	// Upsert inserts or, on conflict of the unique key, fully rewrites the
	// aggregate fields. Status and approval stamps are not touched on update.
	Upsert(ctx context.Context, ts Timesheet) (Timesheet, error)
	// UpdateWorkflow persists status and the approval/rejection/export stamps.
	UpdateWorkflow(ctx context.Context, ts Timesheet) error
}
