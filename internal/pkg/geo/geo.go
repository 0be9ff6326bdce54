package geo

import "math"

// EarthRadiusMeters is the mean radius used for great-circle distances.
const EarthRadiusMeters = 6371000

// HaversineDistance returns the great-circle distance in meters between two
// GPS coordinates given in decimal degrees.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// WithinRadius reports whether the point lies inside the circular zone,
// boundary inclusive, and returns the computed distance.
func WithinRadius(lat, lon, centerLat, centerLon float64, radiusMeters int) (bool, float64) {
	distance := HaversineDistance(lat, lon, centerLat, centerLon)
	return distance <= float64(radiusMeters), distance
}
