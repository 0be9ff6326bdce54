package attendance

import (
	"context"
	"time"
)

// Repository - interface for attendance_records table. The engine reads the
// capture fields and writes only the classification fields.
type Repository interface {
	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	// ListForPeriod returns all records for the employee with
	// attendance_date in [start, end], ordered by date.
	ListForPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)
	// UpdateClassification persists the engine-owned classification fields.
	UpdateClassification(ctx context.Context, r Record) error
}
