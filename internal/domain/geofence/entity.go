package geofence

import (
	"time"

	"github.com/shopspring/decimal"
)

// Geofence is a named circular GPS zone used to validate an employee's
// location at clock-in/out. Referenced from attendance by name, not foreign
// key - locations like "Work From Home" have no zone at all.
type Geofence struct {
	ID          string
	Name        string
	Description *string

	// 8 fractional digits, stored exactly
	Latitude  decimal.Decimal
	Longitude decimal.Decimal

	RadiusMeters int
	Address      *string

	IsActive           bool
	ValidationRequired bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultZones returns the fixed office zones seeded for a fresh install.
// Sites, Meeting, Event and Work From Home have no zone on purpose.
func DefaultZones() []Geofence {
	strPtr := func(s string) *string { return &s }
	return []Geofence{
		{
			Name:               "Head Office",
			Description:        strPtr("Baynunah Head Office - Abu Dhabi"),
			Latitude:           decimal.RequireFromString("24.4539"),
			Longitude:          decimal.RequireFromString("54.3773"),
			RadiusMeters:       200,
			Address:            strPtr("Abu Dhabi, UAE"),
			IsActive:           true,
			ValidationRequired: true,
		},
		{
			Name:               "KEZAD",
			Description:        strPtr("Khalifa Industrial Zone Abu Dhabi"),
			Latitude:           decimal.RequireFromString("24.6400"),
			Longitude:          decimal.RequireFromString("54.6350"),
			RadiusMeters:       500,
			Address:            strPtr("KIZAD, Abu Dhabi, UAE"),
			IsActive:           true,
			ValidationRequired: true,
		},
		{
			Name:               "Safario",
			Description:        strPtr("Safario Manufacturing Facility"),
			Latitude:           decimal.RequireFromString("24.3500"),
			Longitude:          decimal.RequireFromString("54.5000"),
			RadiusMeters:       300,
			Address:            strPtr("Abu Dhabi, UAE"),
			IsActive:           true,
			ValidationRequired: true,
		},
	}
}

// ValidationResult is the outcome of checking a GPS point against the zones.
type ValidationResult struct {
	IsValid            bool     `json:"is_valid"`
	WorkLocation       *string  `json:"work_location,omitempty"`
	MatchedZone        *string  `json:"matched_zone,omitempty"`
	DistanceMeters     *float64 `json:"distance_meters,omitempty"`
	WithinRadius       bool     `json:"within_radius"`
	ValidationRequired bool     `json:"validation_required"`
	Message            string   `json:"message"`
}
