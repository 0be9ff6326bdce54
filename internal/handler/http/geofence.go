package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/geofence"
	"github.com/baynunah-hr/hr-backend-go/internal/handler/http/response"
	geofencesvc "github.com/baynunah-hr/hr-backend-go/internal/service/geofence"
	"github.com/go-chi/chi/v5"
)

type GeofenceHandler interface {
	ValidateLocation(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	SeedDefaults(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type GeofenceHandlerImpl struct {
	geofenceService *geofencesvc.Service
}

func NewGeofenceHandler(geofenceService *geofencesvc.Service) GeofenceHandler {
	return &GeofenceHandlerImpl{geofenceService: geofenceService}
}

// ValidateLocation implements GeofenceHandler.
func (g *GeofenceHandlerImpl) ValidateLocation(w http.ResponseWriter, r *http.Request) {
	var req geofence.ValidateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ValidateLocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := g.geofenceService.ValidateLocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements GeofenceHandler.
func (g *GeofenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req geofence.CreateGeofenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create geofence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := g.geofenceService.CreateGeofence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Geofence created successfully", created)
}

// SeedDefaults implements GeofenceHandler.
func (g *GeofenceHandlerImpl) SeedDefaults(w http.ResponseWriter, r *http.Request) {
	created, err := g.geofenceService.SeedDefaults(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default geofences initialized", map[string]any{
		"created": created,
	})
}

// Get implements GeofenceHandler.
func (g *GeofenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	geofenceID := chi.URLParam(r, "id")
	if geofenceID == "" {
		response.BadRequest(w, "Geofence ID is required", nil)
		return
	}

	found, err := g.geofenceService.GetGeofence(r.Context(), geofenceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements GeofenceHandler.
func (g *GeofenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	zones, err := g.geofenceService.ListGeofences(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, zones, &response.Meta{TotalItems: int64(len(zones))})
}

// Update implements GeofenceHandler.
func (g *GeofenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	geofenceID := chi.URLParam(r, "id")
	if geofenceID == "" {
		response.BadRequest(w, "Geofence ID is required", nil)
		return
	}

	var req geofence.CreateGeofenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update geofence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated := geofence.Geofence{
		ID:                 geofenceID,
		Name:               req.Name,
		Description:        req.Description,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		RadiusMeters:       req.RadiusMeters,
		Address:            req.Address,
		ValidationRequired: req.ValidationRequired,
	}
	if err := g.geofenceService.UpdateGeofence(r.Context(), updated); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence updated successfully", nil)
}

// Deactivate implements GeofenceHandler.
func (g *GeofenceHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	geofenceID := chi.URLParam(r, "id")
	if geofenceID == "" {
		response.BadRequest(w, "Geofence ID is required", nil)
		return
	}

	if err := g.geofenceService.DeactivateGeofence(r.Context(), geofenceID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence deactivated", nil)
}
