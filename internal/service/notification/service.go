package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/employee"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/notification"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/timesheet"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/email"
	"github.com/shopspring/decimal"
)

// Service delivers in-app notification rows and emails for engine events.
// Every method is fire-and-forget: failures are logged and never surface to
// the caller, so a broken mail relay cannot roll back ledger state.
type Service struct {
	notifications notification.Repository
	leaveRequests leave.RequestRepository
	employees     employee.Repository
	email         email.Service
}

func NewService(
	notifications notification.Repository,
	leaveRequests leave.RequestRepository,
	employees employee.Repository,
	emailService email.Service,
) *Service {
	return &Service{
		notifications: notifications,
		leaveRequests: leaveRequests,
		employees:     employees,
		email:         emailService,
	}
}

// LeaveSubmitted notifies the requester's line manager about a new pending
// request.
func (s *Service) LeaveSubmitted(ctx context.Context, request leave.Request, available decimal.Decimal) {
	emp, err := s.employees.GetByID(ctx, request.EmployeeID)
	if err != nil {
		slog.Error("Failed to resolve employee for leave notification", "employee_id", request.EmployeeID, "error", err)
		return
	}

	manager, err := s.employees.GetManager(ctx, request.EmployeeID)
	if err != nil {
		slog.Error("Failed to resolve manager for leave notification", "employee_id", request.EmployeeID, "error", err)
		return
	}
	if manager == nil {
		slog.Warn("Employee has no line manager, skipping leave notification", "employee_id", request.EmployeeID)
		return
	}

	link := "/leave/requests/" + request.ID
	s.createRow(ctx, notification.Notification{
		UserID:  manager.ID,
		Title:   "Leave request pending approval",
		Message: fmt.Sprintf("%s requested %s %s leave (%s to %s)", emp.Name, request.TotalDays.StringFixed(1), request.Type, formatDate(request.StartDate), formatDate(request.EndDate)),
		Type:    notification.TypeLeave,
		Link:    &link,
	})

	if manager.Email == nil {
		return
	}

	department := ""
	if emp.Department != nil {
		department = *emp.Department
	}

	err = s.email.SendLeaveRequestPending(
		*manager.Email, manager.Name, emp.Name, department,
		string(request.Type), formatDate(request.StartDate), formatDate(request.EndDate),
		request.TotalDays.StringFixed(1), available.StringFixed(1),
	)
	if err != nil {
		slog.Error("Failed to send leave pending email", "request_id", request.ID, "error", err)
		return
	}

	if err := s.leaveRequests.MarkManagerNotified(ctx, request.ID, time.Now()); err != nil {
		slog.Error("Failed to mark manager notified", "request_id", request.ID, "error", err)
	}
}

// LeaveDecided notifies the employee that their request was approved or
// rejected.
func (s *Service) LeaveDecided(ctx context.Context, request leave.Request) {
	emp, err := s.employees.GetByID(ctx, request.EmployeeID)
	if err != nil {
		slog.Error("Failed to resolve employee for leave decision notification", "employee_id", request.EmployeeID, "error", err)
		return
	}

	decision := "Approved"
	if request.Status == leave.StatusRejected {
		decision = "Rejected"
	}

	link := "/leave/requests/" + request.ID
	s.createRow(ctx, notification.Notification{
		UserID:  request.EmployeeID,
		Title:   fmt.Sprintf("Leave request %s", decision),
		Message: fmt.Sprintf("Your %s leave (%s to %s) was %s", request.Type, formatDate(request.StartDate), formatDate(request.EndDate), decision),
		Type:    notification.TypeLeave,
		Link:    &link,
	})

	if emp.Email == nil {
		return
	}

	err = s.email.SendLeaveDecision(
		*emp.Email, emp.Name, string(request.Type),
		formatDate(request.StartDate), formatDate(request.EndDate),
		decision, request.RejectionReason,
	)
	if err != nil {
		slog.Error("Failed to send leave decision email", "request_id", request.ID, "error", err)
	}
}

// TimesheetChanged notifies the owning employee of a workflow move.
func (s *Service) TimesheetChanged(ctx context.Context, ts timesheet.Timesheet) {
	emp, err := s.employees.GetByID(ctx, ts.EmployeeID)
	if err != nil {
		slog.Error("Failed to resolve employee for timesheet notification", "employee_id", ts.EmployeeID, "error", err)
		return
	}

	period := fmt.Sprintf("%d-%02d", ts.Year, ts.Month)
	link := "/timesheets/" + ts.ID
	s.createRow(ctx, notification.Notification{
		UserID:  ts.EmployeeID,
		Title:   fmt.Sprintf("Timesheet %s", ts.Status),
		Message: fmt.Sprintf("Your timesheet for %s is now %s", period, ts.Status),
		Type:    notification.TypeTimesheet,
		Link:    &link,
	})

	if emp.Email == nil {
		return
	}

	var notes *string
	switch ts.Status {
	case timesheet.StatusRejected:
		notes = ts.RejectionReason
	case timesheet.StatusManagerApproved:
		notes = ts.ManagerNotes
	case timesheet.StatusHRApproved:
		notes = ts.HRNotes
	}

	if err := s.email.SendTimesheetStatus(*emp.Email, emp.Name, period, string(ts.Status), notes); err != nil {
		slog.Error("Failed to send timesheet status email", "timesheet_id", ts.ID, "error", err)
	}
}

func (s *Service) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]notification.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}

func (s *Service) createRow(ctx context.Context, n notification.Notification) {
	if _, err := s.notifications.Create(ctx, n); err != nil {
		slog.Error("Failed to create notification row", "user_id", n.UserID, "title", n.Title, "error", err)
	}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
