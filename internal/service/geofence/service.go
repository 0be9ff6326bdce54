package geofence

import (
	"context"
	"fmt"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/geofence"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/geo"
)

type Service struct {
	geofences geofence.Repository
}

func NewService(geofences geofence.Repository) *Service {
	return &Service{geofences: geofences}
}

// ValidateLocation checks a GPS point against the active zones. With a target
// work location the check is against that zone only; without one the zones
// are scanned in definition order and the first containing zone wins. When no
// zone contains the point the nearest zone is reported for context.
func (s *Service) ValidateLocation(ctx context.Context, req geofence.ValidateLocationRequest) (geofence.ValidationResult, error) {
	zones, err := s.geofences.ListActive(ctx)
	if err != nil {
		return geofence.ValidationResult{}, fmt.Errorf("failed to list geofences: %w", err)
	}

	return Evaluate(req.Latitude, req.Longitude, req.WorkLocation, zones), nil
}

// Evaluate is the pure matching core behind ValidateLocation.
func Evaluate(lat, lon float64, workLocation *string, zones []geofence.Geofence) geofence.ValidationResult {
	// No zones configured: validation is effectively disabled.
	if len(zones) == 0 {
		return geofence.ValidationResult{
			IsValid:            true,
			WorkLocation:       workLocation,
			ValidationRequired: false,
			Message:            "No geofence zones configured, location accepted",
		}
	}

	if workLocation != nil {
		return evaluateTarget(lat, lon, *workLocation, zones)
	}
	return evaluateScan(lat, lon, zones)
}

func evaluateTarget(lat, lon float64, workLocation string, zones []geofence.Geofence) geofence.ValidationResult {
	var target *geofence.Geofence
	for i := range zones {
		if zones[i].Name == workLocation {
			target = &zones[i]
			break
		}
	}

	// Locations without a zone (Work From Home, Event) are accepted as-is.
	if target == nil {
		return geofence.ValidationResult{
			IsValid:            true,
			WorkLocation:       &workLocation,
			ValidationRequired: false,
			Message:            fmt.Sprintf("Location %q has no geofence, validation not required", workLocation),
		}
	}

	within, distance := zoneDistance(lat, lon, *target)

	if !target.ValidationRequired {
		return geofence.ValidationResult{
			IsValid:            true,
			WorkLocation:       &workLocation,
			MatchedZone:        &target.Name,
			DistanceMeters:     &distance,
			WithinRadius:       within,
			ValidationRequired: false,
			Message:            fmt.Sprintf("Validation not enforced for %q", target.Name),
		}
	}

	if within {
		return geofence.ValidationResult{
			IsValid:            true,
			WorkLocation:       &workLocation,
			MatchedZone:        &target.Name,
			DistanceMeters:     &distance,
			WithinRadius:       true,
			ValidationRequired: true,
			Message:            fmt.Sprintf("Within %q geofence (%.0fm from center)", target.Name, distance),
		}
	}

	return geofence.ValidationResult{
		IsValid:            false,
		WorkLocation:       &workLocation,
		MatchedZone:        &target.Name,
		DistanceMeters:     &distance,
		WithinRadius:       false,
		ValidationRequired: true,
		Message:            fmt.Sprintf("Outside %q geofence: %.0fm from center, radius %dm", target.Name, distance, target.RadiusMeters),
	}
}

func evaluateScan(lat, lon float64, zones []geofence.Geofence) geofence.ValidationResult {
	var nearest *geofence.Geofence
	nearestDistance := 0.0

	for i := range zones {
		zone := &zones[i]
		within, distance := zoneDistance(lat, lon, *zone)
		if within {
			return geofence.ValidationResult{
				IsValid:            true,
				WorkLocation:       &zone.Name,
				MatchedZone:        &zone.Name,
				DistanceMeters:     &distance,
				WithinRadius:       true,
				ValidationRequired: zone.ValidationRequired,
				Message:            fmt.Sprintf("Within %q geofence (%.0fm from center)", zone.Name, distance),
			}
		}
		if nearest == nil || distance < nearestDistance {
			nearest = zone
			nearestDistance = distance
		}
	}

	return geofence.ValidationResult{
		IsValid:            false,
		MatchedZone:        &nearest.Name,
		DistanceMeters:     &nearestDistance,
		WithinRadius:       false,
		ValidationRequired: nearest.ValidationRequired,
		Message:            fmt.Sprintf("Outside all geofences: nearest is %q, %.0fm away", nearest.Name, nearestDistance),
	}
}

func zoneDistance(lat, lon float64, zone geofence.Geofence) (bool, float64) {
	zoneLat, _ := zone.Latitude.Float64()
	zoneLon, _ := zone.Longitude.Float64()
	return geo.WithinRadius(lat, lon, zoneLat, zoneLon, zone.RadiusMeters)
}

func (s *Service) CreateGeofence(ctx context.Context, req geofence.CreateGeofenceRequest) (geofence.Geofence, error) {
	existing, err := s.geofences.GetByName(ctx, req.Name)
	if err != nil {
		return geofence.Geofence{}, err
	}
	if existing != nil {
		return geofence.Geofence{}, geofence.ErrGeofenceNameExists
	}

	return s.geofences.Create(ctx, geofence.Geofence{
		Name:               req.Name,
		Description:        req.Description,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		RadiusMeters:       req.RadiusMeters,
		Address:            req.Address,
		ValidationRequired: req.ValidationRequired,
	})
}

// SeedDefaults creates the fixed office zones that do not exist yet and
// returns the names created. Existing zones are left untouched.
func (s *Service) SeedDefaults(ctx context.Context) ([]string, error) {
	var created []string
	for _, zone := range geofence.DefaultZones() {
		existing, err := s.geofences.GetByName(ctx, zone.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		if _, err := s.geofences.Create(ctx, zone); err != nil {
			return nil, fmt.Errorf("failed to seed geofence %s: %w", zone.Name, err)
		}
		created = append(created, zone.Name)
	}
	return created, nil
}

func (s *Service) GetGeofence(ctx context.Context, id string) (geofence.Geofence, error) {
	return s.geofences.GetByID(ctx, id)
}

func (s *Service) ListGeofences(ctx context.Context) ([]geofence.Geofence, error) {
	return s.geofences.List(ctx)
}

func (s *Service) UpdateGeofence(ctx context.Context, gf geofence.Geofence) error {
	return s.geofences.Update(ctx, gf)
}

func (s *Service) DeactivateGeofence(ctx context.Context, id string) error {
	return s.geofences.Deactivate(ctx, id)
}
