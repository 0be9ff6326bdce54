package holiday

import (
	"context"
	"time"
)

// Repository - interface for public_holidays table. Read paths only see
// active rows; deactivation is the logical delete.
type Repository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	// ListInRange returns active holidays whose inclusive range intersects
	// [start, end], ordered by start date.
	ListInRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	// FindByDate returns the active holiday containing the date, if any.
	FindByDate(ctx context.Context, date time.Time) (*Holiday, error)
	Update(ctx context.Context, h Holiday) error
	Deactivate(ctx context.Context, id string) error
}
