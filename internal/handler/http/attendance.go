package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/baynunah-hr/hr-backend-go/internal/handler/http/response"
	attendancesvc "github.com/baynunah-hr/hr-backend-go/internal/service/attendance"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ListForPeriod(w http.ResponseWriter, r *http.Request)
	ClassifyPeriod(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendancesvc.Service
}

func NewAttendanceHandler(attendanceService *attendancesvc.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ListForPeriod implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListForPeriod(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year := yearParam(r)
	month := monthParam(r)

	records, err := a.attendanceService.ListForPeriod(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, &response.Meta{Year: year, Month: month, TotalItems: int64(len(records))})
}

// ClassifyPeriod implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClassifyPeriod(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClassifyPeriod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	classified, err := a.attendanceService.ClassifyPeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance records classified", classified)
}

func monthParam(r *http.Request) int {
	if raw := r.URL.Query().Get("month"); raw != "" {
		if month, err := strconv.Atoi(raw); err == nil && month >= 1 && month <= 12 {
			return month
		}
	}
	return int(time.Now().Month())
}
