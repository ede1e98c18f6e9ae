package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/services/trips"
	"github.com/fleetops/fleetops/services/trips/mocks"
)

type tripUCFixture struct {
	ctrl     *gomock.Controller
	tripRepo *mocks.MockTripRepo
	registry *mocks.MockResourceRegistry
	drivers  *mocks.MockDriverDirectory
	tripGW   *mocks.MockTripGW
	uc       trips.TripUC
}

func newTripUCFixture(t *testing.T) *tripUCFixture {
	ctrl := gomock.NewController(t)
	tripRepo := mocks.NewMockTripRepo(ctrl)
	registry := mocks.NewMockResourceRegistry(ctrl)
	drivers := mocks.NewMockDriverDirectory(ctrl)
	tripGW := mocks.NewMockTripGW(ctrl)

	return &tripUCFixture{
		ctrl:     ctrl,
		tripRepo: tripRepo,
		registry: registry,
		drivers:  drivers,
		tripGW:   tripGW,
		uc:       NewTripUC(&models.Config{}, tripRepo, registry, drivers, tripGW),
	}
}

func driverFixture(id uuid.UUID) *models.User {
	return &models.User{ID: id, Name: "Janne Kowalski", Email: "janne@fleet.test", Role: models.RoleDriver}
}

func truckFixture(id uuid.UUID) *models.Truck {
	return &models.Truck{
		ID:             id,
		Plate:          "AB-123-CD",
		Model:          "Volvo FH16",
		Status:         models.TruckStatusAvailable,
		CurrentMileage: 120000,
		MaintenanceRules: models.MaintenanceRules{
			MaxLoadCapacity: 25000,
		},
	}
}

func trailerFixture(id uuid.UUID) *models.Trailer {
	return &models.Trailer{
		ID:      id,
		Plate:   "TR-555-XY",
		Type:    "flatbed",
		MaxLoad: 20000,
		Status:  models.TrailerStatusAvailable,
	}
}

func TestCreateTrip_SuccessWithTrailer(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()
	trailerID := uuid.New()
	truck := truckFixture(truckID)

	req := models.CreateTripRequest{
		DriverID:      driverID,
		TruckID:       truckID,
		TrailerID:     &trailerID,
		StartLocation: "Rotterdam",
		EndLocation:   "Hamburg",
		CargoType:     "steel coils",
		CargoWeight:   18000,
	}

	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(driverFixture(driverID), nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(truck, nil)
	f.registry.EXPECT().GetTrailer(gomock.Any(), trailerID).Return(trailerFixture(trailerID), nil)
	f.registry.EXPECT().ClaimTruck(gomock.Any(), truckID).Return(true, nil)
	f.registry.EXPECT().ClaimTrailer(gomock.Any(), trailerID).Return(true, nil)
	f.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, trip *models.Trip) (*models.Trip, error) {
			trip.ID = uuid.New()
			return trip, nil
		})
	f.tripGW.EXPECT().PublishTripCreated(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := f.uc.CreateTrip(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusToDo, trip.Status)
	assert.Equal(t, truck.CurrentMileage, trip.StartMileage)
	assert.Equal(t, driverID, trip.DriverID)
	require.NotNil(t, trip.TrailerID)
	assert.Equal(t, trailerID, *trip.TrailerID)
}

func TestCreateTrip_NoTrailerNeverTouchesTrailers(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()

	req := models.CreateTripRequest{
		DriverID:    driverID,
		TruckID:     truckID,
		CargoWeight: 10000,
	}

	// No GetTrailer/ClaimTrailer expectations: any trailer call fails the test.
	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(driverFixture(driverID), nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(truckFixture(truckID), nil)
	f.registry.EXPECT().ClaimTruck(gomock.Any(), truckID).Return(true, nil)
	f.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, trip *models.Trip) (*models.Trip, error) {
			trip.ID = uuid.New()
			return trip, nil
		})
	f.tripGW.EXPECT().PublishTripCreated(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := f.uc.CreateTrip(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, trip.TrailerID)
}

func TestCreateTrip_RejectsNonDriver(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	adminID := uuid.New()
	admin := &models.User{ID: adminID, Role: models.RoleAdmin}
	f.drivers.EXPECT().GetUserByID(gomock.Any(), adminID).Return(admin, nil)

	_, err := f.uc.CreateTrip(context.Background(), models.CreateTripRequest{DriverID: adminID, TruckID: uuid.New()})

	assert.ErrorIs(t, err, errs.ErrInvalidDriver)
}

func TestCreateTrip_RejectsUnknownDriver(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(nil, errs.ErrUserNotFound)

	_, err := f.uc.CreateTrip(context.Background(), models.CreateTripRequest{DriverID: driverID, TruckID: uuid.New()})

	assert.ErrorIs(t, err, errs.ErrInvalidDriver)
}

func TestCreateTrip_TruckUnavailable(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()
	truck := truckFixture(truckID)
	truck.Status = models.TruckStatusMaintenance

	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(driverFixture(driverID), nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(truck, nil)

	_, err := f.uc.CreateTrip(context.Background(), models.CreateTripRequest{DriverID: driverID, TruckID: truckID})

	require.Error(t, err)
	assert.Equal(t, "Truck AB-123-CD is currently maintenance", err.Error())
}

func TestCreateTrip_TruckOverload(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()

	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(driverFixture(driverID), nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(truckFixture(truckID), nil)

	_, err := f.uc.CreateTrip(context.Background(), models.CreateTripRequest{
		DriverID:    driverID,
		TruckID:     truckID,
		CargoWeight: 26000,
	})

	require.Error(t, err)
	assert.Equal(t, "OVERLOAD: Truck limit is 25000kg", err.Error())
}

func TestCreateTrip_TruckOverloadDefaultLimit(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()
	truck := truckFixture(truckID)
	truck.MaintenanceRules.MaxLoadCapacity = 0

	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(driverFixture(driverID), nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(truck, nil)

	_, err := f.uc.CreateTrip(context.Background(), models.CreateTripRequest{
		DriverID:    driverID,
		TruckID:     truckID,
		CargoWeight: 40001,
	})

	require.Error(t, err)
	assert.Equal(t, "OVERLOAD: Truck limit is 40000kg", err.Error())
}

func TestCreateTrip_TrailerOverload(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()
	trailerID := uuid.New()

	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(driverFixture(driverID), nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(truckFixture(truckID), nil)
	f.registry.EXPECT().GetTrailer(gomock.Any(), trailerID).Return(trailerFixture(trailerID), nil)

	_, err := f.uc.CreateTrip(context.Background(), models.CreateTripRequest{
		DriverID:    driverID,
		TruckID:     truckID,
		TrailerID:   &trailerID,
		CargoWeight: 21000,
	})

	require.Error(t, err)
	assert.Equal(t, "OVERLOAD: Trailer limit is 20000kg", err.Error())
}

func TestCreateTrip_LostClaimRace(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()
	truck := truckFixture(truckID)
	claimed := truckFixture(truckID)
	claimed.Status = models.TruckStatusOnTrip

	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(driverFixture(driverID), nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(truck, nil)
	f.registry.EXPECT().ClaimTruck(gomock.Any(), truckID).Return(false, nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(claimed, nil)

	_, err := f.uc.CreateTrip(context.Background(), models.CreateTripRequest{
		DriverID:    driverID,
		TruckID:     truckID,
		CargoWeight: 1000,
	})

	require.Error(t, err)
	assert.Equal(t, "Truck AB-123-CD is currently on_trip", err.Error())
}

func TestCreateTrip_TrailerClaimLostReleasesTruck(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()
	trailerID := uuid.New()
	attached := trailerFixture(trailerID)
	attached.Status = models.TrailerStatusAttached

	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(driverFixture(driverID), nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(truckFixture(truckID), nil)
	f.registry.EXPECT().GetTrailer(gomock.Any(), trailerID).Return(trailerFixture(trailerID), nil)
	f.registry.EXPECT().ClaimTruck(gomock.Any(), truckID).Return(true, nil)
	f.registry.EXPECT().ClaimTrailer(gomock.Any(), trailerID).Return(false, nil)
	f.registry.EXPECT().ReleaseTruck(gomock.Any(), truckID).Return(nil)
	f.registry.EXPECT().GetTrailer(gomock.Any(), trailerID).Return(attached, nil)

	_, err := f.uc.CreateTrip(context.Background(), models.CreateTripRequest{
		DriverID:    driverID,
		TruckID:     truckID,
		TrailerID:   &trailerID,
		CargoWeight: 1000,
	})

	require.Error(t, err)
	assert.Equal(t, "Trailer TR-555-XY is currently attached", err.Error())
}

func TestCreateTrip_InsertFailureReleasesBoth(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	driverID := uuid.New()
	truckID := uuid.New()
	trailerID := uuid.New()
	insertErr := errors.New("insert failed")

	f.drivers.EXPECT().GetUserByID(gomock.Any(), driverID).Return(driverFixture(driverID), nil)
	f.registry.EXPECT().GetTruck(gomock.Any(), truckID).Return(truckFixture(truckID), nil)
	f.registry.EXPECT().GetTrailer(gomock.Any(), trailerID).Return(trailerFixture(trailerID), nil)
	f.registry.EXPECT().ClaimTruck(gomock.Any(), truckID).Return(true, nil)
	f.registry.EXPECT().ClaimTrailer(gomock.Any(), trailerID).Return(true, nil)
	f.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil, insertErr)
	f.registry.EXPECT().ReleaseTruck(gomock.Any(), truckID).Return(nil)
	f.registry.EXPECT().ReleaseTrailer(gomock.Any(), trailerID).Return(nil)

	_, err := f.uc.CreateTrip(context.Background(), models.CreateTripRequest{
		DriverID:    driverID,
		TruckID:     truckID,
		TrailerID:   &trailerID,
		CargoWeight: 1000,
	})

	assert.ErrorIs(t, err, insertErr)
}

func TestGetTrip_DriverCannotReadForeignTrip(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	owner := uuid.New()
	requester := uuid.New()

	detail := &models.TripDetail{Trip: models.Trip{ID: tripID, DriverID: owner}}
	f.tripRepo.EXPECT().GetTripDetail(gomock.Any(), tripID).Return(detail, nil)

	_, err := f.uc.GetTrip(context.Background(), tripID, requester, models.RoleDriver)

	assert.ErrorIs(t, err, errs.ErrTripNotFound)
}

func TestGetTrip_AdminReadsAnyTrip(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	detail := &models.TripDetail{Trip: models.Trip{ID: tripID, DriverID: uuid.New()}}
	f.tripRepo.EXPECT().GetTripDetail(gomock.Any(), tripID).Return(detail, nil)

	got, err := f.uc.GetTrip(context.Background(), tripID, uuid.New(), models.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, tripID, got.ID)
}

func TestListTrips_FloorsPageAndLimit(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	// An explicit limit below 1 floors to 1; the default of 10 is the
	// transport layer's business, applied only when the parameter is absent.
	f.tripRepo.EXPECT().ListTrips(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params models.TripListParams) ([]models.TripDetail, int, error) {
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, 1, params.Limit)
			assert.Equal(t, "createdAt", params.SortBy)
			assert.Equal(t, "desc", params.Order)
			return []models.TripDetail{}, 25, nil
		})

	page, err := f.uc.ListTrips(context.Background(), models.TripListParams{Page: -3, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, 25, page.Meta.Total)
	assert.Equal(t, 25, page.Meta.TotalPages)
}

func TestListTrips_KeepsSuppliedPaging(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	f.tripRepo.EXPECT().ListTrips(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params models.TripListParams) ([]models.TripDetail, int, error) {
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, 10, params.Limit)
			return []models.TripDetail{}, 25, nil
		})

	page, err := f.uc.ListTrips(context.Background(), models.TripListParams{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 3, page.Meta.TotalPages)
}

func TestUpdateTrip_FinishReleasesResourcesAndRollsMileage(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	truckID := uuid.New()
	trailerID := uuid.New()
	endMileage := 120850.0
	finished := models.TripStatusFinished

	trip := &models.Trip{
		ID:           tripID,
		TruckID:      truckID,
		TrailerID:    &trailerID,
		Status:       models.TripStatusInProgress,
		StartMileage: 120000,
	}

	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.tripRepo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any()).Return(nil)
	f.registry.EXPECT().SetTruckMileage(gomock.Any(), truckID, endMileage).Return(nil)
	f.registry.EXPECT().ReleaseTruck(gomock.Any(), truckID).Return(nil)
	f.registry.EXPECT().ReleaseTrailer(gomock.Any(), trailerID).Return(nil)
	f.tripGW.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.uc.UpdateTrip(context.Background(), tripID, models.UpdateTripRequest{
		Status:     &finished,
		EndMileage: &endMileage,
	})

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusFinished, updated.Status)
	require.NotNil(t, updated.EndMileage)
	assert.Equal(t, endMileage, *updated.EndMileage)
}

func TestUpdateTrip_RepeatFinishConvergesWithoutTouchingResources(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	truckID := uuid.New()
	trailerID := uuid.New()
	endMileage := 120850.0
	recorded := 120850.0
	finished := models.TripStatusFinished

	trip := &models.Trip{
		ID:           tripID,
		TruckID:      truckID,
		TrailerID:    &trailerID,
		Status:       models.TripStatusFinished,
		StartMileage: 120000,
		EndMileage:   &recorded,
	}

	// No SetTruckMileage or release expectations: the truck may already be
	// claimed by a newer trip, so repeating the finish payload must leave
	// both resources alone and converge on the same trip state.
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.tripRepo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any()).Return(nil)
	f.tripGW.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.uc.UpdateTrip(context.Background(), tripID, models.UpdateTripRequest{
		Status:     &finished,
		EndMileage: &endMileage,
	})

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusFinished, updated.Status)
	require.NotNil(t, updated.EndMileage)
	assert.Equal(t, endMileage, *updated.EndMileage)
}

func TestUpdateTrip_InvalidMileageLeavesEverythingUntouched(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	endMileage := 119000.0
	finished := models.TripStatusFinished

	trip := &models.Trip{
		ID:           tripID,
		TruckID:      uuid.New(),
		Status:       models.TripStatusInProgress,
		StartMileage: 120000,
	}

	// No UpdateTrip, SetTruckMileage or release expectations: the rejected
	// update must not write anything.
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)

	_, err := f.uc.UpdateTrip(context.Background(), tripID, models.UpdateTripRequest{
		Status:     &finished,
		EndMileage: &endMileage,
	})

	assert.ErrorIs(t, err, errs.ErrInvalidMileage)
}

func TestUpdateTrip_RejectsBackwardTransition(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	inProgress := models.TripStatusInProgress

	trip := &models.Trip{ID: tripID, Status: models.TripStatusFinished}
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)

	_, err := f.uc.UpdateTrip(context.Background(), tripID, models.UpdateTripRequest{Status: &inProgress})

	require.Error(t, err)
	var transitionErr *errs.InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestUpdateTrip_FinishFromToDoSkipsInProgress(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	truckID := uuid.New()
	finished := models.TripStatusFinished

	trip := &models.Trip{
		ID:           tripID,
		TruckID:      truckID,
		Status:       models.TripStatusToDo,
		StartMileage: 50000,
	}

	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.tripRepo.EXPECT().UpdateTrip(gomock.Any(), gomock.Any()).Return(nil)
	f.registry.EXPECT().ReleaseTruck(gomock.Any(), truckID).Return(nil)
	f.tripGW.EXPECT().PublishTripUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.uc.UpdateTrip(context.Background(), tripID, models.UpdateTripRequest{Status: &finished})

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusFinished, updated.Status)
}

func TestDeleteTrip_ReleasesActiveResources(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	truckID := uuid.New()
	trailerID := uuid.New()

	trip := &models.Trip{
		ID:        tripID,
		TruckID:   truckID,
		TrailerID: &trailerID,
		Status:    models.TripStatusToDo,
	}

	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.registry.EXPECT().ReleaseTruck(gomock.Any(), truckID).Return(nil)
	f.registry.EXPECT().ReleaseTrailer(gomock.Any(), trailerID).Return(nil)
	f.tripRepo.EXPECT().DeleteTrip(gomock.Any(), tripID).Return(nil)
	f.tripGW.EXPECT().PublishTripDeleted(gomock.Any(), tripID).Return(nil)

	err := f.uc.DeleteTrip(context.Background(), tripID)

	assert.NoError(t, err)
}

func TestDeleteTrip_FinishedTripLeavesResourcesAlone(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	trailerID := uuid.New()

	trip := &models.Trip{
		ID:        tripID,
		TruckID:   uuid.New(),
		TrailerID: &trailerID,
		Status:    models.TripStatusFinished,
	}

	// No release expectations: a finished trip's resources were already
	// handed back when it finished.
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(trip, nil)
	f.tripRepo.EXPECT().DeleteTrip(gomock.Any(), tripID).Return(nil)
	f.tripGW.EXPECT().PublishTripDeleted(gomock.Any(), tripID).Return(nil)

	err := f.uc.DeleteTrip(context.Background(), tripID)

	assert.NoError(t, err)
}

func TestDeleteTrip_NotFound(t *testing.T) {
	f := newTripUCFixture(t)
	defer f.ctrl.Finish()

	tripID := uuid.New()
	f.tripRepo.EXPECT().GetTripByID(gomock.Any(), tripID).Return(nil, errs.ErrTripNotFound)

	err := f.uc.DeleteTrip(context.Background(), tripID)

	assert.ErrorIs(t, err, errs.ErrTripNotFound)
}
