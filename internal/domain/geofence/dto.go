package geofence

import (
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ValidateLocationRequest struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	WorkLocation *string `json:"work_location,omitempty"`
}

func (r ValidateLocationRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "Latitude must be between -90 and 90"})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "Longitude must be between -180 and 180"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateGeofenceRequest struct {
	Name               string          `json:"name"`
	Description        *string         `json:"description,omitempty"`
	Latitude           decimal.Decimal `json:"latitude"`
	Longitude          decimal.Decimal `json:"longitude"`
	RadiusMeters       int             `json:"radius_meters"`
	Address            *string         `json:"address,omitempty"`
	ValidationRequired bool            `json:"validation_required"`
}

func (r CreateGeofenceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	lat, _ := r.Latitude.Float64()
	if !validator.IsValidLatitude(lat) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "Latitude must be between -90 and 90"})
	}
	lon, _ := r.Longitude.Float64()
	if !validator.IsValidLongitude(lon) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "Longitude must be between -180 and 180"})
	}
	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{Field: "radius_meters", Message: "Radius must be positive"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
