package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/models"
)

// TripRepo defines the trip persistence operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fleetops/fleetops/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	GetTripDetail(ctx context.Context, id uuid.UUID) (*models.TripDetail, error)
	ListTrips(ctx context.Context, params models.TripListParams) ([]models.TripDetail, int, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	// FindActiveTripForTruck returns the non-finished trip referencing the
	// truck, or nil when there is none. The truck/trailer status fields are
	// a cache of this relation; reconciliation always goes through here.
	FindActiveTripForTruck(ctx context.Context, truckID uuid.UUID) (*models.Trip, error)
	FindActiveTripForTrailer(ctx context.Context, trailerID uuid.UUID) (*models.Trip, error)
}
