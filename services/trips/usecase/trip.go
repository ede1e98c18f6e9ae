package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/logger"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/services/trips"
)

// tripUC implements the trips.TripUC interface. It is the sole authority
// over truck/trailer status transitions triggered by the trip lifecycle.
type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	registry trips.ResourceRegistry
	drivers  trips.DriverDirectory
	tripGW   trips.TripGW
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	registry trips.ResourceRegistry,
	drivers trips.DriverDirectory,
	tripGW trips.TripGW,
) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		registry: registry,
		drivers:  drivers,
		tripGW:   tripGW,
	}
}

// CreateTrip validates the request against resource availability and load
// limits, then allocates the truck (and trailer) and records the trip.
// All validation happens before any write; the writes themselves use
// conditional claims with compensating releases on failure.
func (uc *tripUC) CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error) {
	driver, err := uc.drivers.GetUserByID(ctx, req.DriverID)
	if err != nil || driver.Role != models.RoleDriver {
		return nil, errs.ErrInvalidDriver
	}

	truck, err := uc.registry.GetTruck(ctx, req.TruckID)
	if err != nil {
		return nil, errs.ErrInvalidTruck
	}
	if truck.Status != models.TruckStatusAvailable {
		return nil, &errs.ResourceUnavailableError{
			Resource: "Truck",
			Plate:    truck.Plate,
			Status:   string(truck.Status),
		}
	}

	var trailer *models.Trailer
	if req.TrailerID != nil {
		trailer, err = uc.registry.GetTrailer(ctx, *req.TrailerID)
		if err != nil {
			return nil, errs.ErrInvalidTrailer
		}
		if trailer.Status != models.TrailerStatusAvailable {
			return nil, &errs.ResourceUnavailableError{
				Resource: "Trailer",
				Plate:    trailer.Plate,
				Status:   string(trailer.Status),
			}
		}
		if req.CargoWeight > trailer.MaxLoad {
			return nil, &errs.OverloadError{Resource: "Trailer", LimitKg: trailer.MaxLoad}
		}
	}

	if req.CargoWeight > truck.MaxLoad() {
		return nil, &errs.OverloadError{Resource: "Truck", LimitKg: truck.MaxLoad()}
	}

	claimed, err := uc.registry.ClaimTruck(ctx, truck.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// A concurrent creation won the truck between our read and the
		// conditional write. Report whatever status it holds now.
		return nil, uc.unavailableNow(ctx, truck)
	}

	if trailer != nil {
		claimed, err := uc.registry.ClaimTrailer(ctx, trailer.ID)
		if err != nil || !claimed {
			uc.compensateRelease(ctx, truck.ID, nil)
			if err != nil {
				return nil, err
			}
			current, gerr := uc.registry.GetTrailer(ctx, trailer.ID)
			status := string(models.TrailerStatusAttached)
			if gerr == nil {
				status = string(current.Status)
			}
			return nil, &errs.ResourceUnavailableError{
				Resource: "Trailer",
				Plate:    trailer.Plate,
				Status:   status,
			}
		}
	}

	trip := &models.Trip{
		DriverID:      req.DriverID,
		TruckID:       req.TruckID,
		TrailerID:     req.TrailerID,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		CargoType:     req.CargoType,
		CargoWeight:   req.CargoWeight,
		Description:   req.Description,
		Status:        models.TripStatusToDo,
		StartMileage:  truck.CurrentMileage,
	}

	created, err := uc.tripRepo.CreateTrip(ctx, trip)
	if err != nil {
		var trailerID *uuid.UUID
		if trailer != nil {
			trailerID = &trailer.ID
		}
		uc.compensateRelease(ctx, truck.ID, trailerID)
		return nil, err
	}

	if err := uc.tripGW.PublishTripCreated(ctx, created); err != nil {
		logger.Warn("failed to publish trip created event",
			logger.String("trip_id", created.ID.String()),
			logger.Err(err))
	}

	return created, nil
}

// GetTrip returns a trip populated with its driver, truck and trailer.
// Drivers may only fetch their own trips; a foreign trip reads as missing.
func (uc *tripUC) GetTrip(ctx context.Context, id, requesterID uuid.UUID, requesterRole string) (*models.TripDetail, error) {
	detail, err := uc.tripRepo.GetTripDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if requesterRole == models.RoleDriver && detail.DriverID != requesterID {
		return nil, errs.ErrTripNotFound
	}
	return detail, nil
}

// ListTrips searches, sorts and paginates trips. Driver-role requesters are
// restricted to their own trips.
func (uc *tripUC) ListTrips(ctx context.Context, params models.TripListParams) (*models.TripPage, error) {
	// Absent page/limit are defaulted by the transport layer; anything
	// below 1 that reaches here was supplied explicitly and is floored.
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 1
	}
	if params.SortBy == "" {
		params.SortBy = "createdAt"
	}
	if params.Order == "" {
		params.Order = "desc"
	}

	data, total, err := uc.tripRepo.ListTrips(ctx, params)
	if err != nil {
		return nil, err
	}

	totalPages := (total + params.Limit - 1) / params.Limit
	return &models.TripPage{
		Data: data,
		Meta: models.PageMeta{
			Total:      total,
			Page:       params.Page,
			TotalPages: totalPages,
			Limit:      params.Limit,
		},
	}, nil
}

// UpdateTrip merges the supplied fields onto the trip. Finishing a trip
// releases its resources and rolls the end mileage onto the truck; the
// mileage is validated before any write so a rejected update leaves both
// the trip and the truck untouched.
func (uc *tripUC) UpdateTrip(ctx context.Context, id uuid.UUID, req models.UpdateTripRequest) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !models.CanTransitionTrip(trip.Status, *req.Status) {
		return nil, &errs.InvalidTransitionError{
			From: string(trip.Status),
			To:   string(*req.Status),
		}
	}

	requestingFinish := req.Status != nil && *req.Status == models.TripStatusFinished
	if requestingFinish && req.EndMileage != nil && *req.EndMileage < trip.StartMileage {
		return nil, errs.ErrInvalidMileage
	}

	// Release side effects fire only on the transition into finished. A
	// repeated finish merges the same payload onto the trip but must not
	// touch the truck or trailer again: they may already be claimed by a
	// newer trip.
	finishing := requestingFinish && trip.Status != models.TripStatusFinished

	applyTripUpdate(trip, req)

	if err := uc.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}

	if finishing {
		if req.EndMileage != nil {
			if err := uc.registry.SetTruckMileage(ctx, trip.TruckID, *req.EndMileage); err != nil {
				return nil, err
			}
		}
		if err := uc.registry.ReleaseTruck(ctx, trip.TruckID); err != nil {
			return nil, err
		}
		if trip.TrailerID != nil {
			if err := uc.registry.ReleaseTrailer(ctx, *trip.TrailerID); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.tripGW.PublishTripUpdated(ctx, trip); err != nil {
		logger.Warn("failed to publish trip updated event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	return trip, nil
}

// DeleteTrip cancels a trip. Cancelling a non-finished trip releases the
// truck and trailer it holds; deleting a finished trip leaves them alone.
func (uc *tripUC) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	trip, err := uc.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		return err
	}

	if trip.Status != models.TripStatusFinished {
		if err := uc.registry.ReleaseTruck(ctx, trip.TruckID); err != nil {
			return err
		}
		if trip.TrailerID != nil {
			if err := uc.registry.ReleaseTrailer(ctx, *trip.TrailerID); err != nil {
				return err
			}
		}
	}

	if err := uc.tripRepo.DeleteTrip(ctx, id); err != nil {
		return err
	}

	if err := uc.tripGW.PublishTripDeleted(ctx, id); err != nil {
		logger.Warn("failed to publish trip deleted event",
			logger.String("trip_id", id.String()),
			logger.Err(err))
	}
	return nil
}

// unavailableNow re-reads the truck and reports its current status after a
// lost claim race.
func (uc *tripUC) unavailableNow(ctx context.Context, truck *models.Truck) error {
	status := string(models.TruckStatusOnTrip)
	if current, err := uc.registry.GetTruck(ctx, truck.ID); err == nil {
		status = string(current.Status)
	}
	return &errs.ResourceUnavailableError{
		Resource: "Truck",
		Plate:    truck.Plate,
		Status:   status,
	}
}

// compensateRelease undoes claims after a partial allocation failure.
// Release errors are logged, not returned: the caller already has the
// primary failure to report.
func (uc *tripUC) compensateRelease(ctx context.Context, truckID uuid.UUID, trailerID *uuid.UUID) {
	if err := uc.registry.ReleaseTruck(ctx, truckID); err != nil {
		logger.Error("failed to release truck after aborted trip creation",
			logger.String("truck_id", truckID.String()),
			logger.Err(err))
	}
	if trailerID != nil {
		if err := uc.registry.ReleaseTrailer(ctx, *trailerID); err != nil {
			logger.Error("failed to release trailer after aborted trip creation",
				logger.String("trailer_id", trailerID.String()),
				logger.Err(err))
		}
	}
}

func applyTripUpdate(trip *models.Trip, req models.UpdateTripRequest) {
	if req.StartLocation != nil {
		trip.StartLocation = *req.StartLocation
	}
	if req.EndLocation != nil {
		trip.EndLocation = *req.EndLocation
	}
	if req.CargoType != nil {
		trip.CargoType = *req.CargoType
	}
	if req.CargoWeight != nil {
		trip.CargoWeight = *req.CargoWeight
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.Status != nil {
		trip.Status = *req.Status
	}
	if req.EndMileage != nil {
		trip.EndMileage = req.EndMileage
	}
	if req.FuelConsumed != nil {
		trip.FuelConsumed = req.FuelConsumed
	}
	if req.VehicleIssues != nil {
		trip.VehicleIssues = req.VehicleIssues
	}
}
