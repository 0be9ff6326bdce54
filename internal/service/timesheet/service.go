package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/employee"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/timesheet"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/dates"
)

// Notifier delivers timesheet workflow notifications, fire-and-forget.
type Notifier interface {
	TimesheetChanged(ctx context.Context, ts timesheet.Timesheet)
}

type Service struct {
	tx         database.Transactor
	timesheets timesheet.Repository
	records    attendance.Repository
	leaves     leave.RequestRepository
	employees  employee.Repository
	notifier   Notifier
}

func NewService(
	tx database.Transactor,
	timesheets timesheet.Repository,
	records attendance.Repository,
	leaves leave.RequestRepository,
	employees employee.Repository,
	notifier Notifier,
) *Service {
	return &Service{
		tx:         tx,
		timesheets: timesheets,
		records:    records,
		leaves:     leaves,
		employees:  employees,
		notifier:   notifier,
	}
}

// Generate builds or rebuilds the monthly aggregate. A timesheet already in
// the approval flow is returned unchanged; losing a concurrent generation
// race degrades to an update of identical values through the unique-key
// upsert.
func (s *Service) Generate(ctx context.Context, req timesheet.GenerateRequest) (timesheet.Timesheet, error) {
	periodStart, periodEnd := dates.MonthBounds(req.Year, time.Month(req.Month))

	var result timesheet.Timesheet
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		existing, err := s.timesheets.GetByKey(ctx, req.EmployeeID, req.Year, req.Month)
		if err != nil {
			return err
		}
		if existing != nil && !existing.Status.Regenerable() {
			result = *existing
			return nil
		}

		records, err := s.records.ListForPeriod(ctx, req.EmployeeID, periodStart, periodEnd)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}

		leaves, err := s.leaves.ListApprovedInRange(ctx, req.EmployeeID, periodStart, periodEnd)
		if err != nil {
			return fmt.Errorf("failed to list approved leave: %w", err)
		}

		ts := buildSummary(req.EmployeeID, req.Year, req.Month, records, leaves, periodStart, periodEnd)
		ts.Status = timesheet.StatusDraft

		result, err = s.timesheets.Upsert(ctx, ts)
		return err
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	return result, nil
}

func (s *Service) GetTimesheet(ctx context.Context, id string) (timesheet.Timesheet, error) {
	return s.timesheets.GetByID(ctx, id)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string, year int) ([]timesheet.Timesheet, error) {
	return s.timesheets.ListByEmployee(ctx, employeeID, year)
}

// Submit moves a draft or regenerated-after-rejection timesheet into the
// approval flow. Only the owning employee may submit.
func (s *Service) Submit(ctx context.Context, req timesheet.WorkflowRequest, actorID string) (timesheet.Timesheet, error) {
	updated, err := s.transition(ctx, req.TimesheetID, timesheet.StatusSubmitted, func(ts *timesheet.Timesheet) error {
		if ts.EmployeeID != actorID {
			return timesheet.ErrNotAuthorized
		}

		now := time.Now()
		ts.SubmittedAt = &now
		ts.EmployeeNotes = req.Notes
		ts.RejectedBy = nil
		ts.RejectedAt = nil
		ts.RejectionReason = nil
		return nil
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	s.notifier.TimesheetChanged(ctx, updated)
	return updated, nil
}

// ManagerApprove is authorized for the employee's direct line manager, with
// an HR/admin override. The check runs inside the same transaction as the
// write.
func (s *Service) ManagerApprove(ctx context.Context, req timesheet.WorkflowRequest, actorID string) (timesheet.Timesheet, error) {
	updated, err := s.transition(ctx, req.TimesheetID, timesheet.StatusManagerApproved, func(ts *timesheet.Timesheet) error {
		if err := s.authorizeManager(ctx, ts.EmployeeID, actorID); err != nil {
			return err
		}

		now := time.Now()
		ts.ManagerApprovedBy = &actorID
		ts.ManagerApprovedAt = &now
		ts.ManagerNotes = req.Notes
		return nil
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	s.notifier.TimesheetChanged(ctx, updated)
	return updated, nil
}

func (s *Service) HRApprove(ctx context.Context, req timesheet.WorkflowRequest, actorID string) (timesheet.Timesheet, error) {
	updated, err := s.transition(ctx, req.TimesheetID, timesheet.StatusHRApproved, func(ts *timesheet.Timesheet) error {
		if err := s.authorizeHR(ctx, actorID); err != nil {
			return err
		}

		now := time.Now()
		ts.HRApprovedBy = &actorID
		ts.HRApprovedAt = &now
		ts.HRNotes = req.Notes
		return nil
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	s.notifier.TimesheetChanged(ctx, updated)
	return updated, nil
}

// Reject returns the timesheet to a regenerable state with a reason. The
// actor must hold the approval being refused: the line manager (or HR) for a
// submitted timesheet, HR for a manager-approved one.
func (s *Service) Reject(ctx context.Context, req timesheet.RejectRequest, actorID string) (timesheet.Timesheet, error) {
	updated, err := s.transition(ctx, req.TimesheetID, timesheet.StatusRejected, func(ts *timesheet.Timesheet) error {
		switch ts.Status {
		case timesheet.StatusSubmitted:
			if err := s.authorizeManager(ctx, ts.EmployeeID, actorID); err != nil {
				return err
			}
		case timesheet.StatusManagerApproved:
			if err := s.authorizeHR(ctx, actorID); err != nil {
				return err
			}
		}

		now := time.Now()
		ts.RejectedBy = &actorID
		ts.RejectedAt = &now
		ts.RejectionReason = &req.Reason
		return nil
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	s.notifier.TimesheetChanged(ctx, updated)
	return updated, nil
}

// Export stamps the payroll handoff. HR only.
func (s *Service) Export(ctx context.Context, timesheetID, actorID string) (timesheet.Timesheet, error) {
	updated, err := s.transition(ctx, timesheetID, timesheet.StatusExported, func(ts *timesheet.Timesheet) error {
		if err := s.authorizeHR(ctx, actorID); err != nil {
			return err
		}

		now := time.Now()
		ref := fmt.Sprintf("PAY-%d%02d-%s", ts.Year, ts.Month, shortID(ts.ID))
		ts.ExportedAt = &now
		ts.PayrollReference = &ref
		return nil
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	s.notifier.TimesheetChanged(ctx, updated)
	return updated, nil
}

// transition re-reads the row under lock, verifies the state machine allows
// the move, applies the stamp mutation and persists, all in one transaction.
func (s *Service) transition(
	ctx context.Context,
	timesheetID string,
	to timesheet.Status,
	apply func(ts *timesheet.Timesheet) error,
) (timesheet.Timesheet, error) {
	var updated timesheet.Timesheet
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ts, err := s.timesheets.GetByID(ctx, timesheetID)
		if err != nil {
			return err
		}

		if !ts.Status.CanTransition(to) {
			return timesheet.ErrInvalidStateTransition
		}

		if err := apply(&ts); err != nil {
			return err
		}
		ts.Status = to

		if err := s.timesheets.UpdateWorkflow(ctx, ts); err != nil {
			return err
		}
		updated = ts
		return nil
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	return updated, nil
}

func (s *Service) authorizeManager(ctx context.Context, employeeID, actorID string) error {
	actor, err := s.employees.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor.Role.IsHR() {
		return nil
	}

	manager, err := s.employees.GetManager(ctx, employeeID)
	if err != nil {
		return err
	}
	if manager == nil || manager.ID != actorID {
		return timesheet.ErrNotAuthorized
	}
	return nil
}

func (s *Service) authorizeHR(ctx context.Context, actorID string) error {
	actor, err := s.employees.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.Role.IsHR() {
		return timesheet.ErrNotAuthorized
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
