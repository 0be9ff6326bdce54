package geofence

import "errors"

var (
	ErrGeofenceNotFound   = errors.New("Geofence not found")
	ErrGeofenceNameExists = errors.New("Geofence name already exists")
	ErrInvalidCoordinates = errors.New("Invalid GPS coordinates")
)
