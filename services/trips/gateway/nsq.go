package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/logger"
	"github.com/fleetops/fleetops/internal/pkg/models"
	nsqpkg "github.com/fleetops/fleetops/internal/pkg/nsq"
)

// NSQ topics for trip lifecycle events
const (
	TopicTripCreated = "trip.created"
	TopicTripUpdated = "trip.updated"
	TopicTripDeleted = "trip.deleted"
)

// TripEvent is the payload published for every lifecycle event
type TripEvent struct {
	TripID     uuid.UUID         `json:"trip_id"`
	Status     models.TripStatus `json:"status,omitempty"`
	DriverID   uuid.UUID         `json:"driver_id,omitempty"`
	TruckID    uuid.UUID         `json:"truck_id,omitempty"`
	TrailerID  *uuid.UUID        `json:"trailer_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// TripGW publishes trip lifecycle events to NSQ. A nil producer disables
// publishing, which keeps local development working without an nsqd.
type TripGW struct {
	producer *nsqpkg.Producer
}

// NewTripGW creates a new trip gateway
func NewTripGW(producer *nsqpkg.Producer) *TripGW {
	return &TripGW{producer: producer}
}

// PublishTripCreated publishes a trip.created event
func (g *TripGW) PublishTripCreated(ctx context.Context, trip *models.Trip) error {
	return g.publish(TopicTripCreated, eventFromTrip(trip))
}

// PublishTripUpdated publishes a trip.updated event
func (g *TripGW) PublishTripUpdated(ctx context.Context, trip *models.Trip) error {
	return g.publish(TopicTripUpdated, eventFromTrip(trip))
}

// PublishTripDeleted publishes a trip.deleted event
func (g *TripGW) PublishTripDeleted(ctx context.Context, tripID uuid.UUID) error {
	return g.publish(TopicTripDeleted, TripEvent{TripID: tripID, OccurredAt: time.Now()})
}

func (g *TripGW) publish(topic string, event TripEvent) error {
	if g.producer == nil {
		logger.Debug("event publishing disabled, dropping event",
			logger.String("topic", topic),
			logger.String("trip_id", event.TripID.String()))
		return nil
	}
	return g.producer.Publish(topic, event)
}

func eventFromTrip(trip *models.Trip) TripEvent {
	return TripEvent{
		TripID:     trip.ID,
		Status:     trip.Status,
		DriverID:   trip.DriverID,
		TruckID:    trip.TruckID,
		TrailerID:  trip.TrailerID,
		OccurredAt: time.Now(),
	}
}
