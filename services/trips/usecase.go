package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/models"
)

// TripUC defines the trip lifecycle business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fleetops/fleetops/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, id, requesterID uuid.UUID, requesterRole string) (*models.TripDetail, error)
	ListTrips(ctx context.Context, params models.TripListParams) (*models.TripPage, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, req models.UpdateTripRequest) (*models.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}
