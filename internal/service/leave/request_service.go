package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/employee"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/dates"
	"github.com/shopspring/decimal"
)

// Notifier delivers leave lifecycle notifications. Implementations must not
// fail the calling operation; delivery errors are absorbed and logged.
type Notifier interface {
	LeaveSubmitted(ctx context.Context, request leave.Request, available decimal.Decimal)
	LeaveDecided(ctx context.Context, request leave.Request)
}

type RequestService struct {
	tx        database.Transactor
	requests  leave.RequestRepository
	balances  leave.BalanceRepository
	employees employee.Repository
	notifier  Notifier
}

func NewRequestService(
	tx database.Transactor,
	requests leave.RequestRepository,
	balances leave.BalanceRepository,
	employees employee.Repository,
	notifier Notifier,
) *RequestService {
	return &RequestService{
		tx:        tx,
		requests:  requests,
		balances:  balances,
		employees: employees,
		notifier:  notifier,
	}
}

// CalculateDays charges the inclusive calendar span of the request. Holidays
// and weekends inside the span are not subtracted; they reduce working days
// in reporting only. Half-day requests must cover a single date.
func CalculateDays(startDate, endDate time.Time, isHalfDay bool) (decimal.Decimal, error) {
	days := dates.DaysInclusive(startDate, endDate)
	if days == 0 {
		return decimal.Zero, leave.ErrInvalidDateRange
	}

	if isHalfDay {
		if days != 1 {
			return decimal.Zero, leave.ErrInvalidDateRange
		}
		return decimal.NewFromFloat(0.5), nil
	}

	return decimal.NewFromInt(int64(days)), nil
}

func (s *RequestService) CreateRequest(ctx context.Context, req leave.CreateRequestRequest) (leave.Request, error) {
	leaveType := leave.Type(req.LeaveType)
	if !leaveType.Valid() {
		return leave.Request{}, leave.ErrInvalidLeaveType
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	startDate, endDate = dates.Normalize(startDate), dates.Normalize(endDate)

	totalDays, err := CalculateDays(startDate, endDate, req.IsHalfDay)
	if err != nil {
		return leave.Request{}, err
	}

	var halfDayType *leave.HalfDayType
	if req.IsHalfDay {
		ht := leave.HalfDayFirstHalf
		if req.HalfDayType != nil {
			ht = leave.HalfDayType(*req.HalfDayType)
		}
		halfDayType = &ht
	}

	var created leave.Request
	var available decimal.Decimal
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.employees.Lock(ctx, req.EmployeeID); err != nil {
			return fmt.Errorf("failed to lock employee row: %w", err)
		}

		conflict, err := s.requests.FindOverlapping(ctx, req.EmployeeID, startDate, endDate, "")
		if err != nil {
			return fmt.Errorf("failed to check overlapping requests: %w", err)
		}
		if conflict != nil {
			return &leave.OverlapError{ConflictingID: conflict.ID}
		}

		// Half-day and unpaid requests bypass the balance check at creation.
		if leaveType.RequiresBalance() && !req.IsHalfDay {
			balance, err := s.balances.Get(ctx, req.EmployeeID, leaveType, startDate.Year())
			switch {
			case errors.Is(err, leave.ErrBalanceNotFound):
				available = decimal.Zero
			case err != nil:
				return fmt.Errorf("failed to get leave balance: %w", err)
			default:
				available = balance.Available()
			}

			if available.LessThan(totalDays) {
				return &leave.InsufficientBalanceError{Available: available, Requested: totalDays}
			}
		}

		request := leave.Request{
			EmployeeID:  req.EmployeeID,
			Type:        leaveType,
			StartDate:   startDate,
			EndDate:     endDate,
			IsHalfDay:   req.IsHalfDay,
			HalfDayType: halfDayType,
			TotalDays:   totalDays,
			Reason:      req.Reason,
			DocumentURL: req.DocumentURL,
			Status:      leave.StatusPending,
		}

		created, err = s.requests.Create(ctx, request)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.notifier.LeaveSubmitted(ctx, created, available)

	return created, nil
}

func (s *RequestService) Approve(ctx context.Context, requestID, approverID string) (leave.Request, error) {
	var approved leave.Request
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		if err := s.employees.Lock(ctx, request.EmployeeID); err != nil {
			return fmt.Errorf("failed to lock employee row: %w", err)
		}

		// Re-read under the lock: a concurrent decision may have landed first.
		request, err = s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrInvalidStateTransition
		}

		if request.Type.RequiresBalance() {
			year := request.StartDate.Year()
			balance, err := s.balances.Get(ctx, request.EmployeeID, request.Type, year)
			if errors.Is(err, leave.ErrBalanceNotFound) {
				balance, err = s.balances.Create(ctx, leave.Balance{
					EmployeeID: request.EmployeeID,
					Year:       year,
					Type:       request.Type,
				})
			}
			if err != nil {
				return fmt.Errorf("failed to resolve leave balance: %w", err)
			}

			if err := s.balances.AddPending(ctx, balance.ID, request.TotalDays); err != nil {
				return err
			}
		}

		now := time.Now()
		request.Status = leave.StatusApproved
		request.ApprovedBy = &approverID
		request.ApprovedAt = &now

		if err := s.requests.UpdateDecision(ctx, request); err != nil {
			return err
		}

		approved = request
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.notifier.LeaveDecided(ctx, approved)

	return approved, nil
}

func (s *RequestService) Reject(ctx context.Context, requestID, reason, approverID string) (leave.Request, error) {
	var rejected leave.Request
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		if err := s.employees.Lock(ctx, request.EmployeeID); err != nil {
			return fmt.Errorf("failed to lock employee row: %w", err)
		}

		request, err = s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrInvalidStateTransition
		}

		now := time.Now()
		request.Status = leave.StatusRejected
		request.RejectionReason = &reason
		request.ApprovedBy = &approverID
		request.ApprovedAt = &now

		if err := s.requests.UpdateDecision(ctx, request); err != nil {
			return err
		}

		rejected = request
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.notifier.LeaveDecided(ctx, rejected)

	return rejected, nil
}

// Cancel withdraws a pending request. Approved requests cannot be cancelled
// here; reversing an approval is an HR balance adjustment.
func (s *RequestService) Cancel(ctx context.Context, requestID, actorID string) (leave.Request, error) {
	var cancelled leave.Request
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.EmployeeID != actorID {
			return leave.ErrLeaveRequestNotFound
		}
		if request.Status != leave.StatusPending {
			return leave.ErrInvalidStateTransition
		}

		if err := s.requests.UpdateStatus(ctx, requestID, leave.StatusCancelled); err != nil {
			return err
		}

		request.Status = leave.StatusCancelled
		cancelled = request
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}
	return cancelled, nil
}

func (s *RequestService) GetRequest(ctx context.Context, requestID string) (leave.Request, error) {
	return s.requests.GetByID(ctx, requestID)
}

func (s *RequestService) ListRequests(ctx context.Context, employeeID string, year int) ([]leave.Request, error) {
	return s.requests.ListByEmployee(ctx, employeeID, year)
}
