package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/employee"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/dates"
)

type BalanceService struct {
	tx        database.Transactor
	requests  leave.RequestRepository
	balances  leave.BalanceRepository
	employees employee.Repository
}

func NewBalanceService(
	tx database.Transactor,
	requests leave.RequestRepository,
	balances leave.BalanceRepository,
	employees employee.Repository,
) *BalanceService {
	return &BalanceService{
		tx:        tx,
		requests:  requests,
		balances:  balances,
		employees: employees,
	}
}

func (s *BalanceService) GetBalances(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	return s.balances.ListByEmployeeYear(ctx, employeeID, year)
}

func (s *BalanceService) GetBalance(ctx context.Context, employeeID string, leaveType leave.Type, year int) (leave.Balance, error) {
	if !leaveType.Valid() {
		return leave.Balance{}, leave.ErrInvalidLeaveType
	}
	return s.balances.Get(ctx, employeeID, leaveType, year)
}

// SeedBalance writes entitlement and carry-forward for one ledger row,
// creating it when absent. Used and pending are untouched on existing rows.
func (s *BalanceService) SeedBalance(ctx context.Context, req leave.SeedBalanceRequest) (leave.Balance, error) {
	var seeded leave.Balance
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		balance, err := s.balances.Upsert(ctx, leave.Balance{
			EmployeeID:     req.EmployeeID,
			Year:           req.Year,
			Type:           leave.Type(req.LeaveType),
			Entitlement:    req.Entitlement,
			CarriedForward: req.CarriedForward,
		})
		if err != nil {
			return err
		}
		seeded = balance
		return nil
	})
	if err != nil {
		return leave.Balance{}, err
	}
	return seeded, nil
}

// SeedYear upserts a zeroed-entitlement row for every leave type the employee
// does not yet have for the year. Entitlements are then set per type.
func (s *BalanceService) SeedYear(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	var seeded []leave.Balance
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
			return err
		}

		existing, err := s.balances.ListByEmployeeYear(ctx, employeeID, year)
		if err != nil {
			return err
		}
		have := make(map[leave.Type]bool, len(existing))
		for _, b := range existing {
			have[b.Type] = true
		}

		seeded = existing
		for _, t := range leave.Types {
			if have[t] || !t.RequiresBalance() {
				continue
			}
			balance, err := s.balances.Create(ctx, leave.Balance{
				EmployeeID: employeeID,
				Year:       year,
				Type:       t,
			})
			if err != nil {
				return err
			}
			seeded = append(seeded, balance)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}

func (s *BalanceService) AdjustBalance(ctx context.Context, req leave.AdjustBalanceRequest) (leave.Balance, error) {
	var adjusted leave.Balance
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.employees.Lock(ctx, req.EmployeeID); err != nil {
			return fmt.Errorf("failed to lock employee row: %w", err)
		}

		balance, err := s.balances.Get(ctx, req.EmployeeID, leave.Type(req.LeaveType), req.Year)
		if err != nil {
			return err
		}

		if err := s.balances.Adjust(ctx, balance.ID, req.Delta, req.Reason); err != nil {
			return err
		}

		adjusted, err = s.balances.Get(ctx, req.EmployeeID, leave.Type(req.LeaveType), req.Year)
		return err
	})
	if err != nil {
		return leave.Balance{}, err
	}
	return adjusted, nil
}

// ConsumeElapsed settles approved requests whose leave period has ended:
// pending days move to used and the request is marked completed. Each request
// settles in its own transaction so one failure does not block the batch.
func (s *BalanceService) ConsumeElapsed(ctx context.Context, asOf time.Time) (int, error) {
	elapsed, err := s.requests.ListApprovedEndedBefore(ctx, dates.Normalize(asOf))
	if err != nil {
		return 0, fmt.Errorf("failed to list elapsed leave requests: %w", err)
	}

	settled := 0
	for _, request := range elapsed {
		if err := s.settleRequest(ctx, request.ID); err != nil {
			slog.Error("Failed to settle elapsed leave request",
				"request_id", request.ID,
				"employee_id", request.EmployeeID,
				"error", err,
			)
			continue
		}
		settled++
	}
	return settled, nil
}

func (s *BalanceService) settleRequest(ctx context.Context, requestID string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
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
		if request.Status != leave.StatusApproved {
			return nil
		}

		if request.Type.RequiresBalance() {
			balance, err := s.balances.Get(ctx, request.EmployeeID, request.Type, request.StartDate.Year())
			if err != nil {
				return err
			}
			if err := s.balances.MovePendingToUsed(ctx, balance.ID, request.TotalDays); err != nil {
				return err
			}
		}

		return s.requests.UpdateStatus(ctx, request.ID, leave.StatusCompleted)
	})
}
