package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/geofence"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type geofenceRepositoryImpl struct {
	db *database.DB
}

func NewGeofenceRepository(db *database.DB) geofence.Repository {
	return &geofenceRepositoryImpl{db: db}
}

const geofenceColumns = `
	gf.id, gf.name, gf.description,
	gf.latitude, gf.longitude, gf.radius_meters, gf.address,
	gf.is_active, gf.validation_required,
	gf.created_at, gf.updated_at
`

func scanGeofence(row pgx.Row) (geofence.Geofence, error) {
	var gf geofence.Geofence
	err := row.Scan(
		&gf.ID, &gf.Name, &gf.Description,
		&gf.Latitude, &gf.Longitude, &gf.RadiusMeters, &gf.Address,
		&gf.IsActive, &gf.ValidationRequired,
		&gf.CreatedAt, &gf.UpdatedAt,
	)
	return gf, err
}

func (r *geofenceRepositoryImpl) Create(ctx context.Context, gf geofence.Geofence) (geofence.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO geofences (
			id, name, description,
			latitude, longitude, radius_meters, address,
			is_active, validation_required,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6,
			TRUE, $7,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		gf.Name, gf.Description,
		gf.Latitude, gf.Longitude, gf.RadiusMeters, gf.Address,
		gf.ValidationRequired,
	).Scan(&gf.ID, &gf.CreatedAt, &gf.UpdatedAt)
	if err != nil {
		return geofence.Geofence{}, fmt.Errorf("failed to insert geofence: %w", err)
	}
	gf.IsActive = true
	return gf, nil
}

func (r *geofenceRepositoryImpl) GetByID(ctx context.Context, id string) (geofence.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	gf, err := scanGeofence(q.QueryRow(ctx, `SELECT `+geofenceColumns+` FROM geofences gf WHERE gf.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.Geofence{}, geofence.ErrGeofenceNotFound
		}
		return geofence.Geofence{}, err
	}
	return gf, nil
}

func (r *geofenceRepositoryImpl) GetByName(ctx context.Context, name string) (*geofence.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	gf, err := scanGeofence(q.QueryRow(ctx, `
		SELECT `+geofenceColumns+` FROM geofences gf WHERE gf.name = $1 AND gf.is_active = TRUE
	`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &gf, nil
}

func (r *geofenceRepositoryImpl) List(ctx context.Context) ([]geofence.Geofence, error) {
	return r.list(ctx, `SELECT `+geofenceColumns+` FROM geofences gf ORDER BY gf.created_at`)
}

func (r *geofenceRepositoryImpl) ListActive(ctx context.Context) ([]geofence.Geofence, error) {
	return r.list(ctx, `SELECT `+geofenceColumns+` FROM geofences gf WHERE gf.is_active = TRUE ORDER BY gf.created_at`)
}

func (r *geofenceRepositoryImpl) list(ctx context.Context, query string) ([]geofence.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []geofence.Geofence
	for rows.Next() {
		gf, err := scanGeofence(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, gf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return zones, nil
}

func (r *geofenceRepositoryImpl) Update(ctx context.Context, gf geofence.Geofence) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE geofences
		SET name = $1, description = $2,
		    latitude = $3, longitude = $4, radius_meters = $5, address = $6,
		    validation_required = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`, gf.Name, gf.Description, gf.Latitude, gf.Longitude, gf.RadiusMeters, gf.Address, gf.ValidationRequired, gf.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.ErrGeofenceNotFound
		}
		return fmt.Errorf("failed to update geofence %s: %w", gf.ID, err)
	}
	return nil
}

func (r *geofenceRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE geofences SET is_active = FALSE, updated_at = NOW() WHERE id = $1 RETURNING id
	`, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.ErrGeofenceNotFound
		}
		return fmt.Errorf("failed to deactivate geofence %s: %w", id, err)
	}
	return nil
}
