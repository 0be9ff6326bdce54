package leave

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrLeaveRequestNotFound   = errors.New("Leave request not found")
	ErrBalanceNotFound        = errors.New("Leave balance not found")
	ErrInvalidLeaveType       = errors.New("Invalid leave type")
	ErrInvalidDateRange       = errors.New("End date must be on or after start date")
	ErrOverlappingRequest     = errors.New("Overlapping leave request exists")
	ErrInsufficientBalance    = errors.New("Insufficient leave balance")
	ErrInvalidStateTransition = errors.New("Leave request already processed")
)

// OverlapError carries the id of the conflicting request.
type OverlapError struct {
	ConflictingID string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping leave request exists (ID: %s)", e.ConflictingID)
}

func (e *OverlapError) Unwrap() error { return ErrOverlappingRequest }

// InsufficientBalanceError carries the figures that failed the check.
type InsufficientBalanceError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available %s days, requested %s days",
		e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }
