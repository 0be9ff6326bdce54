package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Abu Dhabi test coordinates.
const (
	headOfficeLat = 24.453884
	headOfficeLon = 54.377344
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	d := HaversineDistance(headOfficeLat, headOfficeLon, headOfficeLat, headOfficeLon)
	assert.Equal(t, 0.0, d)
}

func TestHaversineDistance_KnownDistance(t *testing.T) {
	// Abu Dhabi to Dubai is roughly 123 km great-circle.
	d := HaversineDistance(24.453884, 54.377344, 25.204849, 55.270783)
	assert.InDelta(t, 123000, d, 3000)
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	a := HaversineDistance(24.45, 54.37, 24.46, 54.38)
	b := HaversineDistance(24.46, 54.38, 24.45, 54.37)
	assert.InDelta(t, a, b, 1e-9)
}

func TestWithinRadius_BoundaryInclusive(t *testing.T) {
	// Move ~100m north: 1 degree latitude is ~111,320m.
	northLat := headOfficeLat + 100.0/111320.0

	within, distance := WithinRadius(northLat, headOfficeLon, headOfficeLat, headOfficeLon, 101)
	assert.True(t, within)
	assert.InDelta(t, 100, distance, 1)

	// A point just beyond the radius fails.
	within, _ = WithinRadius(northLat, headOfficeLon, headOfficeLat, headOfficeLon, 99)
	assert.False(t, within)
}

func TestWithinRadius_ExactBoundary(t *testing.T) {
	within, distance := WithinRadius(headOfficeLat, headOfficeLon, headOfficeLat, headOfficeLon, 0)
	assert.True(t, within)
	assert.Equal(t, 0.0, distance)
}
