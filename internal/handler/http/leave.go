package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/handler/http/response"
	leavesvc "github.com/baynunah-hr/hr-backend-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)

	GetMyBalances(w http.ResponseWriter, r *http.Request)
	GetEmployeeBalances(w http.ResponseWriter, r *http.Request)
	SeedBalance(w http.ResponseWriter, r *http.Request)
	AdjustBalance(w http.ResponseWriter, r *http.Request)
	ConsumeElapsed(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	requestService *leavesvc.RequestService
	balanceService *leavesvc.BalanceService
}

func NewLeaveHandler(requestService *leavesvc.RequestService, balanceService *leavesvc.BalanceService) LeaveHandler {
	return &LeaveHandlerImpl{
		requestService: requestService,
		balanceService: balanceService,
	}
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	var req leave.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Employees file their own requests.
	req.EmployeeID = actorID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := l.requestService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", created)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	request, err := l.requestService.GetRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	year := yearParam(r)
	requests, err := l.requestService.ListRequests(r.Context(), actorID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, requests, &response.Meta{Year: year, TotalItems: int64(len(requests))})
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	approved, err := l.requestService.Approve(r.Context(), requestID, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", approved)
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	rejected, err := l.requestService.Reject(r.Context(), requestID, reason, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", rejected)
}

// CancelRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	cancelled, err := l.requestService.Cancel(r.Context(), requestID, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", cancelled)
}

// GetMyBalances implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	l.writeBalances(w, r, actorID)
}

// GetEmployeeBalances implements LeaveHandler.
func (l *LeaveHandlerImpl) GetEmployeeBalances(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	l.writeBalances(w, r, employeeID)
}

func (l *LeaveHandlerImpl) writeBalances(w http.ResponseWriter, r *http.Request, employeeID string) {
	year := yearParam(r)
	balances, err := l.balanceService.GetBalances(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		resp = append(resp, leave.NewBalanceResponse(b))
	}
	response.SuccessWithMeta(w, resp, &response.Meta{Year: year, TotalItems: int64(len(resp))})
}

// SeedBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) SeedBalance(w http.ResponseWriter, r *http.Request) {
	var req leave.SeedBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SeedBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	seeded, err := l.balanceService.SeedBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance seeded successfully", leave.NewBalanceResponse(seeded))
}

// AdjustBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req leave.AdjustBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdjustBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	adjusted, err := l.balanceService.AdjustBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance adjusted successfully", leave.NewBalanceResponse(adjusted))
}

// ConsumeElapsed implements LeaveHandler.
func (l *LeaveHandlerImpl) ConsumeElapsed(w http.ResponseWriter, r *http.Request) {
	settled, err := l.balanceService.ConsumeElapsed(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Elapsed leave requests settled", map[string]int{"settled": settled})
}

func yearParam(r *http.Request) int {
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			return year
		}
	}
	return time.Now().Year()
}
