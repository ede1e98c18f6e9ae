package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/models"
)

// ResourceRegistry exposes truck/trailer lookup and status mutation to the
// trip engine. Claim operations are conditional writes: they succeed only
// when the resource is still available, which closes the read-then-write
// race between concurrent trip creations.
//
//go:generate mockgen -destination=mocks/mock_registry.go -package=mocks github.com/fleetops/fleetops/services/trips ResourceRegistry,DriverDirectory
type ResourceRegistry interface {
	GetTruck(ctx context.Context, id uuid.UUID) (*models.Truck, error)
	GetTrailer(ctx context.Context, id uuid.UUID) (*models.Trailer, error)

	ClaimTruck(ctx context.Context, id uuid.UUID) (bool, error)
	ClaimTrailer(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseTruck(ctx context.Context, id uuid.UUID) error
	ReleaseTrailer(ctx context.Context, id uuid.UUID) error
	SetTruckMileage(ctx context.Context, id uuid.UUID, mileage float64) error
}

// DriverDirectory resolves user records for driver validation
type DriverDirectory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
