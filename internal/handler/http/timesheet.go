package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/timesheet"
	"github.com/baynunah-hr/hr-backend-go/internal/handler/http/response"
	timesheetsvc "github.com/baynunah-hr/hr-backend-go/internal/service/timesheet"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMyTimesheets(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	ManagerApprove(w http.ResponseWriter, r *http.Request)
	HRApprove(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService *timesheetsvc.Service
}

func NewTimesheetHandler(timesheetService *timesheetsvc.Service) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Generate implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	actorID, role, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	var req timesheet.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate timesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Employees generate their own sheet; HR may generate for anyone.
	if req.EmployeeID == "" || !role.IsHR() {
		req.EmployeeID = actorID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	generated, err := t.timesheetService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet generated successfully", generated)
}

// Get implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	timesheetID := chi.URLParam(r, "id")
	if timesheetID == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	found, err := t.timesheetService.GetTimesheet(r.Context(), timesheetID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// GetMyTimesheets implements TimesheetHandler.
func (t *TimesheetHandlerImpl) GetMyTimesheets(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	year := yearParam(r)
	sheets, err := t.timesheetService.ListByEmployee(r.Context(), actorID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, sheets, &response.Meta{Year: year, TotalItems: int64(len(sheets))})
}

// Submit implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	t.workflow(w, r, t.timesheetService.Submit, "Timesheet submitted for approval")
}

// ManagerApprove implements TimesheetHandler.
func (t *TimesheetHandlerImpl) ManagerApprove(w http.ResponseWriter, r *http.Request) {
	t.workflow(w, r, t.timesheetService.ManagerApprove, "Timesheet approved by manager")
}

// HRApprove implements TimesheetHandler.
func (t *TimesheetHandlerImpl) HRApprove(w http.ResponseWriter, r *http.Request) {
	t.workflow(w, r, t.timesheetService.HRApprove, "Timesheet approved by HR")
}

type workflowFn func(ctx context.Context, req timesheet.WorkflowRequest, actorID string) (timesheet.Timesheet, error)

func (t *TimesheetHandlerImpl) workflow(w http.ResponseWriter, r *http.Request, fn workflowFn, message string) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	timesheetID := chi.URLParam(r, "id")
	if timesheetID == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	var body struct {
		Notes *string `json:"notes,omitempty"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			slog.Error("Timesheet workflow decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	req := timesheet.WorkflowRequest{TimesheetID: timesheetID, Notes: body.Notes}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := fn(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, updated)
}

// Reject implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	timesheetID := chi.URLParam(r, "id")
	if timesheetID == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Reject timesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := timesheet.RejectRequest{TimesheetID: timesheetID, Reason: body.Reason}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rejected, err := t.timesheetService.Reject(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet rejected", rejected)
}

// Export implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	timesheetID := chi.URLParam(r, "id")
	if timesheetID == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	exported, err := t.timesheetService.Export(r.Context(), timesheetID, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet exported to payroll", exported)
}
