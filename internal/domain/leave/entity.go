package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enumerates the UAE leave types. Unknown values are rejected at the
// boundary, not deep in business logic.
type Type string

const (
	TypeAnnual        Type = "annual"        // Article 29
	TypeSick          Type = "sick"          // Article 31
	TypeMaternity     Type = "maternity"     // Article 30
	TypePaternity     Type = "paternity"
	TypeCompassionate Type = "compassionate"
	TypeHajj          Type = "hajj"
	TypeUnpaid        Type = "unpaid"
	TypeStudy         Type = "study"
	TypeMarriage      Type = "marriage"
	TypeEmergency     Type = "emergency"
)

// Types lists every valid leave type, in seeding order.
var Types = []Type{
	TypeAnnual,
	TypeSick,
	TypeMaternity,
	TypePaternity,
	TypeCompassionate,
	TypeHajj,
	TypeUnpaid,
	TypeStudy,
	TypeMarriage,
	TypeEmergency,
}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// RequiresBalance reports whether requests of this type are checked against
// the employee's ledger. Unpaid leave never draws on a balance.
func (t Type) RequiresBalance() bool {
	return t != TypeUnpaid
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed" // leave period has elapsed, pending moved to used
)

type HalfDayType string

const (
	HalfDayFirstHalf  HalfDayType = "first_half"
	HalfDaySecondHalf HalfDayType = "second_half"
)

// Request is a leave request submitted by an employee.
type Request struct {
	ID         string
	EmployeeID string

	Type      Type
	StartDate time.Time
	EndDate   time.Time

	IsHalfDay   bool
	HalfDayType *HalfDayType

	// TotalDays is fixed at creation and immutable afterwards.
	TotalDays decimal.Decimal

	Reason      *string
	DocumentURL *string

	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	ManagerEmail       *string
	ManagerNotified    bool
	NotificationSentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
}

// Balance is the per-employee, per-year, per-type ledger row. Available is
// always derived, never stored.
type Balance struct {
	ID         string
	EmployeeID string
	Year       int
	Type       Type

	Entitlement      decimal.Decimal
	CarriedForward   decimal.Decimal
	Used             decimal.Decimal
	Pending          decimal.Decimal
	Adjustment       decimal.Decimal
	AdjustmentReason *string
	OffsetDaysUsed   decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Available computes the spendable balance:
// entitlement + carried_forward + adjustment - used - pending.
// Offset days are tracked separately and do not enter the formula.
func (b Balance) Available() decimal.Decimal {
	return b.Entitlement.
		Add(b.CarriedForward).
		Add(b.Adjustment).
		Sub(b.Used).
		Sub(b.Pending)
}
