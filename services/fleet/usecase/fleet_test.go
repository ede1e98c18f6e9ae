package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/services/fleet"
	"github.com/fleetops/fleetops/services/fleet/mocks"
)

type fleetUCFixture struct {
	ctrl      *gomock.Controller
	fleetRepo *mocks.MockFleetRepo
	trips     *mocks.MockActiveTripFinder
	uc        fleet.FleetUC
}

func newFleetUCFixture(t *testing.T) *fleetUCFixture {
	ctrl := gomock.NewController(t)
	fleetRepo := mocks.NewMockFleetRepo(ctrl)
	trips := mocks.NewMockActiveTripFinder(ctrl)

	return &fleetUCFixture{
		ctrl:      ctrl,
		fleetRepo: fleetRepo,
		trips:     trips,
		uc:        NewFleetUC(&models.Config{}, fleetRepo, trips, nil),
	}
}

func TestCreateTruck_StartsAvailable(t *testing.T) {
	f := newFleetUCFixture(t)
	defer f.ctrl.Finish()

	f.fleetRepo.EXPECT().CreateTruck(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, truck *models.Truck) error {
			truck.ID = uuid.New()
			return nil
		})

	truck, err := f.uc.CreateTruck(context.Background(), models.CreateTruckRequest{
		Plate:           "XY-900-ZZ",
		Model:           "Scania R500",
		CurrentMileage:  5000,
		MaxLoadCapacity: 22000,
	})

	require.NoError(t, err)
	assert.Equal(t, models.TruckStatusAvailable, truck.Status)
	assert.Equal(t, 22000.0, truck.MaintenanceRules.MaxLoadCapacity)
}

func TestGetTruck_PopulatesMaintenanceHistory(t *testing.T) {
	f := newFleetUCFixture(t)
	defer f.ctrl.Finish()

	truckID := uuid.New()
	history := []models.MaintenanceLog{{ID: uuid.New(), TruckID: truckID, Type: "oil change"}}

	f.fleetRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(&models.Truck{ID: truckID}, nil)
	f.fleetRepo.EXPECT().ListMaintenanceLogs(gomock.Any(), truckID).Return(history, nil)

	truck, err := f.uc.GetTruck(context.Background(), truckID)

	require.NoError(t, err)
	require.Len(t, truck.MaintenanceHistory, 1)
	assert.Equal(t, "oil change", truck.MaintenanceHistory[0].Type)
}

func TestDeleteTruck_BlockedByActiveTrip(t *testing.T) {
	f := newFleetUCFixture(t)
	defer f.ctrl.Finish()

	truckID := uuid.New()

	f.fleetRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(&models.Truck{ID: truckID}, nil)
	f.trips.EXPECT().FindActiveTripForTruck(gomock.Any(), truckID).
		Return(&models.Trip{ID: uuid.New(), TruckID: truckID, Status: models.TripStatusInProgress}, nil)

	err := f.uc.DeleteTruck(context.Background(), truckID)

	assert.ErrorIs(t, err, errs.ErrTruckOnTrip)
}

func TestDeleteTruck_AllowedWhenIdle(t *testing.T) {
	f := newFleetUCFixture(t)
	defer f.ctrl.Finish()

	truckID := uuid.New()

	f.fleetRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(&models.Truck{ID: truckID}, nil)
	f.trips.EXPECT().FindActiveTripForTruck(gomock.Any(), truckID).Return(nil, nil)
	f.fleetRepo.EXPECT().DeleteTruck(gomock.Any(), truckID).Return(nil)

	err := f.uc.DeleteTruck(context.Background(), truckID)

	assert.NoError(t, err)
}

func TestDeleteTrailer_BlockedByActiveTrip(t *testing.T) {
	f := newFleetUCFixture(t)
	defer f.ctrl.Finish()

	trailerID := uuid.New()

	f.fleetRepo.EXPECT().GetTrailer(gomock.Any(), trailerID).Return(&models.Trailer{ID: trailerID}, nil)
	f.trips.EXPECT().FindActiveTripForTrailer(gomock.Any(), trailerID).
		Return(&models.Trip{ID: uuid.New(), TrailerID: &trailerID, Status: models.TripStatusToDo}, nil)

	err := f.uc.DeleteTrailer(context.Background(), trailerID)

	assert.ErrorIs(t, err, errs.ErrTrailerAttached)
}

func TestAddMaintenanceLog_CapturesCurrentMileage(t *testing.T) {
	f := newFleetUCFixture(t)
	defer f.ctrl.Finish()

	truckID := uuid.New()
	truck := &models.Truck{ID: truckID, CurrentMileage: 98500}

	f.fleetRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(truck, nil)
	f.fleetRepo.EXPECT().AddMaintenanceLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.MaintenanceLog) error {
			log.ID = uuid.New()
			return nil
		})

	log, err := f.uc.AddMaintenanceLog(context.Background(), truckID, models.MaintenanceLogRequest{
		Type: "brake service",
		Cost: 850,
	})

	require.NoError(t, err)
	assert.Equal(t, 98500.0, log.MileageAtService)
	assert.Equal(t, truckID, log.TruckID)
}

func TestSummary_AggregatesCounts(t *testing.T) {
	f := newFleetUCFixture(t)
	defer f.ctrl.Finish()

	f.fleetRepo.EXPECT().CountTrucksByStatus(gomock.Any()).
		Return(map[string]int{"available": 3, "on_trip": 2}, nil)
	f.fleetRepo.EXPECT().CountTrailersByStatus(gomock.Any()).
		Return(map[string]int{"available": 1, "attached": 2}, nil)
	f.fleetRepo.EXPECT().CountActiveTrips(gomock.Any()).Return(2, nil)

	summary, err := f.uc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.ActiveTrips)
	assert.Equal(t, 3, summary.Trucks["available"])
	assert.Equal(t, 2, summary.Trailers["attached"])
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestUpdateTrailer_MergesFields(t *testing.T) {
	f := newFleetUCFixture(t)
	defer f.ctrl.Finish()

	trailerID := uuid.New()
	existing := &models.Trailer{
		ID:      trailerID,
		Plate:   "TR-001-AA",
		Type:    "flatbed",
		MaxLoad: 18000,
		Status:  models.TrailerStatusAvailable,
	}
	newLoad := 21000.0

	f.fleetRepo.EXPECT().GetTrailer(gomock.Any(), trailerID).Return(existing, nil)
	f.fleetRepo.EXPECT().UpdateTrailer(gomock.Any(), gomock.Any()).Return(nil)

	trailer, err := f.uc.UpdateTrailer(context.Background(), trailerID, models.UpdateTrailerRequest{
		MaxLoad: &newLoad,
	})

	require.NoError(t, err)
	assert.Equal(t, 21000.0, trailer.MaxLoad)
	assert.Equal(t, "flatbed", trailer.Type)
}
