package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/models"
)

// FleetRepo is the persistence contract for trucks and trailers. The claim
// and release methods are the conditional-write primitives the trip engine
// allocates resources with; ClaimTruck and ClaimTrailer return false when
// the resource was not available at write time.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fleetops/fleetops/services/fleet FleetRepo,ActiveTripFinder
type FleetRepo interface {
	CreateTruck(ctx context.Context, truck *models.Truck) error
	GetTruck(ctx context.Context, id uuid.UUID) (*models.Truck, error)
	ListTrucks(ctx context.Context, params models.TruckListParams) ([]models.Truck, int, error)
	UpdateTruck(ctx context.Context, truck *models.Truck) error
	DeleteTruck(ctx context.Context, id uuid.UUID) error
	AddMaintenanceLog(ctx context.Context, log *models.MaintenanceLog) error
	ListMaintenanceLogs(ctx context.Context, truckID uuid.UUID) ([]models.MaintenanceLog, error)

	CreateTrailer(ctx context.Context, trailer *models.Trailer) error
	GetTrailer(ctx context.Context, id uuid.UUID) (*models.Trailer, error)
	ListTrailers(ctx context.Context) ([]models.Trailer, error)
	UpdateTrailer(ctx context.Context, trailer *models.Trailer) error
	DeleteTrailer(ctx context.Context, id uuid.UUID) error

	ClaimTruck(ctx context.Context, id uuid.UUID) (bool, error)
	ClaimTrailer(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseTruck(ctx context.Context, id uuid.UUID) error
	ReleaseTrailer(ctx context.Context, id uuid.UUID) error
	SetTruckMileage(ctx context.Context, id uuid.UUID, mileage float64) error

	CountTrucksByStatus(ctx context.Context) (map[string]int, error)
	CountTrailersByStatus(ctx context.Context) (map[string]int, error)
	CountActiveTrips(ctx context.Context) (int, error)
}

// ActiveTripFinder resolves whether a resource is referenced by a trip that
// has not finished. Deletion guards depend on it.
type ActiveTripFinder interface {
	FindActiveTripForTruck(ctx context.Context, truckID uuid.UUID) (*models.Trip, error)
	FindActiveTripForTrailer(ctx context.Context, trailerID uuid.UUID) (*models.Trip, error)
}
