package geofence

import (
	"context"
	"fmt"
	"testing"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/geofence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zone(name string, lat, lon float64, radius int, required bool) geofence.Geofence {
	return geofence.Geofence{
		Name:               name,
		Latitude:           decimal.NewFromFloat(lat),
		Longitude:          decimal.NewFromFloat(lon),
		RadiusMeters:       radius,
		IsActive:           true,
		ValidationRequired: required,
	}
}

func strptr(s string) *string { return &s }

func TestEvaluate_NoZonesConfigured(t *testing.T) {
	result := Evaluate(24.45, 54.37, nil, nil)

	assert.True(t, result.IsValid)
	assert.False(t, result.ValidationRequired)
	assert.Nil(t, result.MatchedZone)
}

func TestEvaluate_TargetZoneWithin(t *testing.T) {
	zones := []geofence.Geofence{zone("Head Office", 24.453884, 54.377344, 200, true)}

	result := Evaluate(24.453884, 54.377344, strptr("Head Office"), zones)

	assert.True(t, result.IsValid)
	assert.True(t, result.WithinRadius)
	assert.True(t, result.ValidationRequired)
	require.NotNil(t, result.MatchedZone)
	assert.Equal(t, "Head Office", *result.MatchedZone)
	require.NotNil(t, result.DistanceMeters)
	assert.InDelta(t, 0, *result.DistanceMeters, 1)
}

func TestEvaluate_TargetZoneOutside(t *testing.T) {
	zones := []geofence.Geofence{zone("Head Office", 24.453884, 54.377344, 100, true)}

	// ~500m north of center
	result := Evaluate(24.453884+500.0/111320.0, 54.377344, strptr("Head Office"), zones)

	assert.False(t, result.IsValid)
	assert.False(t, result.WithinRadius)
	require.NotNil(t, result.DistanceMeters)
	assert.InDelta(t, 500, *result.DistanceMeters, 5)
}

func TestEvaluate_TargetZoneValidationNotRequired(t *testing.T) {
	zones := []geofence.Geofence{zone("Sites", 24.1, 54.1, 100, false)}

	// Far from the zone, but the zone does not enforce validation.
	result := Evaluate(25.0, 55.0, strptr("Sites"), zones)

	assert.True(t, result.IsValid)
	assert.False(t, result.WithinRadius)
	assert.False(t, result.ValidationRequired)
}

func TestEvaluate_TargetLocationWithoutZone(t *testing.T) {
	zones := []geofence.Geofence{zone("Head Office", 24.453884, 54.377344, 200, true)}

	result := Evaluate(23.0, 53.0, strptr("Work From Home"), zones)

	assert.True(t, result.IsValid)
	assert.False(t, result.ValidationRequired)
	assert.Nil(t, result.MatchedZone)
}

func TestEvaluate_ScanMatchesFirstZoneInDefinitionOrder(t *testing.T) {
	// Two concentric zones; the first defined wins even though both contain
	// the point.
	zones := []geofence.Geofence{
		zone("KEZAD", 24.453884, 54.377344, 500, true),
		zone("Head Office", 24.453884, 54.377344, 1000, true),
	}

	result := Evaluate(24.453884, 54.377344, nil, zones)

	assert.True(t, result.IsValid)
	require.NotNil(t, result.MatchedZone)
	assert.Equal(t, "KEZAD", *result.MatchedZone)
}

func TestEvaluate_ScanNearestFallback(t *testing.T) {
	zones := []geofence.Geofence{
		zone("Head Office", 24.453884, 54.377344, 100, true),
		zone("KEZAD", 24.7, 54.6, 100, true),
	}

	// Point outside both, closer to Head Office.
	result := Evaluate(24.46, 54.38, nil, zones)

	assert.False(t, result.IsValid)
	require.NotNil(t, result.MatchedZone)
	assert.Equal(t, "Head Office", *result.MatchedZone)
	require.NotNil(t, result.DistanceMeters)
	assert.Greater(t, *result.DistanceMeters, 100.0)
	assert.True(t, result.ValidationRequired)
}

func TestEvaluate_ScanNearestEchoesZoneFlag(t *testing.T) {
	zones := []geofence.Geofence{
		zone("Head Office", 24.453884, 54.377344, 100, false),
	}

	// The out-of-range result carries the nearest zone's own
	// validation_required setting.
	result := Evaluate(24.46, 54.38, nil, zones)

	assert.False(t, result.IsValid)
	require.NotNil(t, result.MatchedZone)
	assert.Equal(t, "Head Office", *result.MatchedZone)
	assert.False(t, result.ValidationRequired)
}

func TestEvaluate_BoundaryInclusive(t *testing.T) {
	zones := []geofence.Geofence{zone("Head Office", 24.453884, 54.377344, 100, true)}

	// ~100m north sits on the boundary and passes; one more meter fails.
	onBoundary := Evaluate(24.453884+100.0/111320.0, 54.377344, strptr("Head Office"), zones)
	assert.True(t, onBoundary.IsValid)

	beyond := Evaluate(24.453884+102.0/111320.0, 54.377344, strptr("Head Office"), zones)
	assert.False(t, beyond.IsValid)
}

type fakeGeofenceRepo struct {
	zones  []geofence.Geofence
	nextID int
}

func (f *fakeGeofenceRepo) Create(ctx context.Context, gf geofence.Geofence) (geofence.Geofence, error) {
	f.nextID++
	gf.ID = fmt.Sprintf("gf-%d", f.nextID)
	gf.IsActive = true
	f.zones = append(f.zones, gf)
	return gf, nil
}

func (f *fakeGeofenceRepo) GetByID(ctx context.Context, id string) (geofence.Geofence, error) {
	for _, z := range f.zones {
		if z.ID == id {
			return z, nil
		}
	}
	return geofence.Geofence{}, geofence.ErrGeofenceNotFound
}

func (f *fakeGeofenceRepo) GetByName(ctx context.Context, name string) (*geofence.Geofence, error) {
	for _, z := range f.zones {
		if z.Name == name && z.IsActive {
			found := z
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeGeofenceRepo) List(ctx context.Context) ([]geofence.Geofence, error) {
	return f.zones, nil
}

func (f *fakeGeofenceRepo) ListActive(ctx context.Context) ([]geofence.Geofence, error) {
	var out []geofence.Geofence
	for _, z := range f.zones {
		if z.IsActive {
			out = append(out, z)
		}
	}
	return out, nil
}

func (f *fakeGeofenceRepo) Update(ctx context.Context, gf geofence.Geofence) error { return nil }

func (f *fakeGeofenceRepo) Deactivate(ctx context.Context, id string) error { return nil }

func TestSeedDefaults_Idempotent(t *testing.T) {
	repo := &fakeGeofenceRepo{}
	service := NewService(repo)

	created, err := service.SeedDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Head Office", "KEZAD", "Safario"}, created)

	// Existing zones are skipped on a second run.
	created, err = service.SeedDefaults(context.Background())
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Len(t, repo.zones, 3)
}

func TestCreateGeofence_DuplicateName(t *testing.T) {
	repo := &fakeGeofenceRepo{}
	service := NewService(repo)

	req := geofence.CreateGeofenceRequest{
		Name:         "Head Office",
		Latitude:     decimal.NewFromFloat(24.4539),
		Longitude:    decimal.NewFromFloat(54.3773),
		RadiusMeters: 200,
	}
	_, err := service.CreateGeofence(context.Background(), req)
	require.NoError(t, err)

	_, err = service.CreateGeofence(context.Background(), req)
	assert.ErrorIs(t, err, geofence.ErrGeofenceNameExists)
}
