package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/holiday"
	"github.com/baynunah-hr/hr-backend-go/internal/handler/http/response"
	holidaysvc "github.com/baynunah-hr/hr-backend-go/internal/service/holiday"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByYear(w http.ResponseWriter, r *http.Request)
	WorkingDays(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService *holidaysvc.Service
}

func NewHolidayHandler(holidayService *holidaysvc.Service) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created successfully", created)
}

// Get implements HolidayHandler.
func (h *HolidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	holidayID := chi.URLParam(r, "id")
	if holidayID == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	found, err := h.holidayService.GetHoliday(r.Context(), holidayID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByYear implements HolidayHandler.
func (h *HolidayHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	year := yearParam(r)
	holidays, err := h.holidayService.ListByYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, holidays, &response.Meta{Year: year, TotalItems: int64(len(holidays))})
}

// WorkingDays implements HolidayHandler.
func (h *HolidayHandlerImpl) WorkingDays(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		response.BadRequest(w, "Start date must be YYYY-MM-DD", nil)
		return
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		response.BadRequest(w, "End date must be YYYY-MM-DD", nil)
		return
	}

	days, err := h.holidayService.WorkingDays(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"working_days": days})
}

// Update implements HolidayHandler.
func (h *HolidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	holidayID := chi.URLParam(r, "id")
	if holidayID == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	updated := holiday.Holiday{
		ID:        holidayID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Year:      startDate.Year(),
		Type:      holiday.HolidayType(req.HolidayType),
		IsPaid:    req.IsPaid,
	}
	if err := h.holidayService.UpdateHoliday(r.Context(), updated); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday updated successfully", nil)
}

// Deactivate implements HolidayHandler.
func (h *HolidayHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	holidayID := chi.URLParam(r, "id")
	if holidayID == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayService.DeactivateHoliday(r.Context(), holidayID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deactivated", nil)
}
