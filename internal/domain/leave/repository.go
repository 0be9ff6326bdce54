package leave

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RequestRepository - interface for leave_requests table
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]Request, error)
	// FindOverlapping returns the first pending/approved request for the
	// employee whose inclusive [start,end] intersects the given range,
	// excluding excludeID when non-empty.
	FindOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (*Request, error)
	// ListApprovedInRange returns approved requests intersecting [start,end].
	ListApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Request, error)
	// ListApprovedEndedBefore returns approved requests whose end date is
	// strictly before cutoff; used by the consumption batch.
	ListApprovedEndedBefore(ctx context.Context, cutoff time.Time) ([]Request, error)
	UpdateDecision(ctx context.Context, request Request) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	MarkManagerNotified(ctx context.Context, id string, at time.Time) error
}

// BalanceRepository - interface for leave_balances table
type BalanceRepository interface {
	Get(ctx context.Context, employeeID string, leaveType Type, year int) (Balance, error)
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Balance, error)
	Create(ctx context.Context, balance Balance) (Balance, error)
	// Upsert writes entitlement/carried_forward for the key, creating the row
	// if absent. Used by administrative seeding.
	Upsert(ctx context.Context, balance Balance) (Balance, error)
	AddPending(ctx context.Context, id string, days decimal.Decimal) error
	// MovePendingToUsed shifts days from pending into used atomically.
	MovePendingToUsed(ctx context.Context, id string, days decimal.Decimal) error
	Adjust(ctx context.Context, id string, delta decimal.Decimal, reason string) error
}
