package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/models"
)

// TripGW publishes trip lifecycle events for downstream consumers
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fleetops/fleetops/services/trips TripGW
type TripGW interface {
	PublishTripCreated(ctx context.Context, trip *models.Trip) error
	PublishTripUpdated(ctx context.Context, trip *models.Trip) error
	PublishTripDeleted(ctx context.Context, tripID uuid.UUID) error
}
