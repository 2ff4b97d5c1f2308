package fleet

import (
	"context"

	"github.com/google/uuid"
)

// Repository provides the car and location dimension data joined into
// summaries for display.
type Repository interface {
	GetCarByID(ctx context.Context, carID uuid.UUID) (*Car, error)
	ListCars(ctx context.Context) ([]Car, error)
	ListLocations(ctx context.Context) ([]Location, error)

	// CarRegistrations returns registration numbers keyed by car ID for the
	// given cars, in one query.
	CarRegistrations(ctx context.Context, carIDs []uuid.UUID) (map[uuid.UUID]string, error)
}
