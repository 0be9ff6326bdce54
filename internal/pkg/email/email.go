package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Service defines the interface for sending engine notifications. Every
// caller treats sends as fire-and-forget: a failed email never rolls back
// ledger or timesheet state.
type Service interface {
	SendLeaveRequestPending(to, managerName, employeeName, department, leaveType, startDate, endDate, totalDays, balance string) error
	SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, decision string, reason *string) error
	SendTimesheetStatus(to, employeeName, period, status string, notes *string) error
}

type serviceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewService creates a new email service instance
func NewService(cfg config.SMTPConfig) (Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &serviceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leavePendingEmailData struct {
	ManagerName  string
	EmployeeName string
	Department   string
	LeaveType    string
	StartDate    string
	EndDate      string
	TotalDays    string
	Balance      string
}

// SendLeaveRequestPending notifies a line manager about a new leave request.
func (s *serviceImpl) SendLeaveRequestPending(to, managerName, employeeName, department, leaveType, startDate, endDate, totalDays, balance string) error {
	data := leavePendingEmailData{
		ManagerName:  managerName,
		EmployeeName: employeeName,
		Department:   department,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalDays:    totalDays,
		Balance:      balance,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_pending.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Leave Request from %s - %s", employeeName, leaveType), body.String())
}

type leaveDecisionEmailData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Decision     string
	Reason       string
}

// SendLeaveDecision notifies an employee that their request was decided.
func (s *serviceImpl) SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, decision string, reason *string) error {
	data := leaveDecisionEmailData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Decision:     decision,
	}
	if reason != nil {
		data.Reason = *reason
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Leave Request %s", decision), body.String())
}

type timesheetStatusEmailData struct {
	EmployeeName string
	Period       string
	Status       string
	Notes        string
}

// SendTimesheetStatus notifies an employee of a timesheet workflow change.
func (s *serviceImpl) SendTimesheetStatus(to, employeeName, period, status string, notes *string) error {
	data := timesheetStatusEmailData{
		EmployeeName: employeeName,
		Period:       period,
		Status:       status,
	}
	if notes != nil {
		data.Notes = *notes
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "timesheet_status.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Timesheet %s - %s", period, status), body.String())
}

func (s *serviceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
