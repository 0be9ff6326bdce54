package geofence

import "context"

// Repository - interface for geofences table. ListActive preserves definition
// order (creation order): the validator matches zones in that order.
type Repository interface {
	Create(ctx context.Context, gf Geofence) (Geofence, error)
	GetByID(ctx context.Context, id string) (Geofence, error)
	GetByName(ctx context.Context, name string) (*Geofence, error)
	List(ctx context.Context) ([]Geofence, error)
	ListActive(ctx context.Context) ([]Geofence, error)
	Update(ctx context.Context, gf Geofence) error
	Deactivate(ctx context.Context, id string) error
}
