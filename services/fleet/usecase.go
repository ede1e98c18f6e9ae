package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/models"
)

// FleetUC defines the truck and trailer administration business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fleetops/fleetops/services/fleet FleetUC
type FleetUC interface {
	CreateTruck(ctx context.Context, req models.CreateTruckRequest) (*models.Truck, error)
	GetTruck(ctx context.Context, id uuid.UUID) (*models.Truck, error)
	ListTrucks(ctx context.Context, params models.TruckListParams) (*models.TruckPage, error)
	UpdateTruck(ctx context.Context, id uuid.UUID, req models.UpdateTruckRequest) (*models.Truck, error)
	DeleteTruck(ctx context.Context, id uuid.UUID) error
	AddMaintenanceLog(ctx context.Context, truckID uuid.UUID, req models.MaintenanceLogRequest) (*models.MaintenanceLog, error)

	CreateTrailer(ctx context.Context, req models.CreateTrailerRequest) (*models.Trailer, error)
	GetTrailer(ctx context.Context, id uuid.UUID) (*models.Trailer, error)
	ListTrailers(ctx context.Context) ([]models.Trailer, error)
	UpdateTrailer(ctx context.Context, id uuid.UUID, req models.UpdateTrailerRequest) (*models.Trailer, error)
	DeleteTrailer(ctx context.Context, id uuid.UUID) error

	Summary(ctx context.Context) (*models.FleetSummary, error)
}
