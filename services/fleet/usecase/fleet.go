package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops/internal/pkg/database"
	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/logger"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/services/fleet"
)

const (
	summaryCacheKey = "fleet:summary"
	summaryCacheTTL = 30 * time.Second
)

// fleetUC implements the fleet.FleetUC interface
type fleetUC struct {
	cfg       *models.Config
	fleetRepo fleet.FleetRepo
	trips     fleet.ActiveTripFinder
	cache     *database.RedisClient
}

// NewFleetUC creates a new fleet use case
func NewFleetUC(
	cfg *models.Config,
	fleetRepo fleet.FleetRepo,
	trips fleet.ActiveTripFinder,
	cache *database.RedisClient,
) fleet.FleetUC {
	return &fleetUC{
		cfg:       cfg,
		fleetRepo: fleetRepo,
		trips:     trips,
		cache:     cache,
	}
}

// CreateTruck registers a new truck as available
func (uc *fleetUC) CreateTruck(ctx context.Context, req models.CreateTruckRequest) (*models.Truck, error) {
	truck := &models.Truck{
		Plate:          req.Plate,
		Model:          req.Model,
		VIN:            req.VIN,
		Photo:          req.Photo,
		Status:         models.TruckStatusAvailable,
		CurrentMileage: req.CurrentMileage,
		EngineHours:    req.EngineHours,
		MaintenanceRules: models.MaintenanceRules{
			ServiceIntervalKm: req.ServiceIntervalKm,
			MaxLoadCapacity:   req.MaxLoadCapacity,
		},
	}
	if err := uc.fleetRepo.CreateTruck(ctx, truck); err != nil {
		return nil, err
	}
	return truck, nil
}

// GetTruck returns a truck populated with its maintenance history
func (uc *fleetUC) GetTruck(ctx context.Context, id uuid.UUID) (*models.Truck, error) {
	truck, err := uc.fleetRepo.GetTruck(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := uc.fleetRepo.ListMaintenanceLogs(ctx, id)
	if err != nil {
		return nil, err
	}
	truck.MaintenanceHistory = history
	return truck, nil
}

// ListTrucks searches and paginates the truck roster
func (uc *fleetUC) ListTrucks(ctx context.Context, params models.TruckListParams) (*models.TruckPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	trucks, total, err := uc.fleetRepo.ListTrucks(ctx, params)
	if err != nil {
		return nil, err
	}

	totalPages := (total + params.Limit - 1) / params.Limit
	return &models.TruckPage{
		Data: trucks,
		Meta: models.PageMeta{
			Total:      total,
			Page:       params.Page,
			TotalPages: totalPages,
			Limit:      params.Limit,
		},
	}, nil
}

// UpdateTruck merges the supplied fields onto the truck. The plate is
// immutable; status changes here are administrative (maintenance, retired)
// and never interfere with trip allocation, which uses conditional claims.
func (uc *fleetUC) UpdateTruck(ctx context.Context, id uuid.UUID, req models.UpdateTruckRequest) (*models.Truck, error) {
	truck, err := uc.fleetRepo.GetTruck(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Model != nil {
		truck.Model = *req.Model
	}
	if req.VIN != nil {
		truck.VIN = *req.VIN
	}
	if req.Photo != nil {
		truck.Photo = *req.Photo
	}
	if req.Status != nil {
		truck.Status = *req.Status
	}
	if req.CurrentMileage != nil {
		truck.CurrentMileage = *req.CurrentMileage
	}
	if req.EngineHours != nil {
		truck.EngineHours = *req.EngineHours
	}
	if req.ServiceIntervalKm != nil {
		truck.MaintenanceRules.ServiceIntervalKm = *req.ServiceIntervalKm
	}
	if req.MaxLoadCapacity != nil {
		truck.MaintenanceRules.MaxLoadCapacity = *req.MaxLoadCapacity
	}

	if err := uc.fleetRepo.UpdateTruck(ctx, truck); err != nil {
		return nil, err
	}
	return truck, nil
}

// DeleteTruck removes a truck unless an unfinished trip still references it
func (uc *fleetUC) DeleteTruck(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.fleetRepo.GetTruck(ctx, id); err != nil {
		return err
	}

	active, err := uc.trips.FindActiveTripForTruck(ctx, id)
	if err != nil {
		return err
	}
	if active != nil {
		return errs.ErrTruckOnTrip
	}

	return uc.fleetRepo.DeleteTruck(ctx, id)
}

// AddMaintenanceLog appends a service record, capturing the truck's mileage
// at the time of service.
func (uc *fleetUC) AddMaintenanceLog(ctx context.Context, truckID uuid.UUID, req models.MaintenanceLogRequest) (*models.MaintenanceLog, error) {
	truck, err := uc.fleetRepo.GetTruck(ctx, truckID)
	if err != nil {
		return nil, err
	}

	log := &models.MaintenanceLog{
		TruckID:          truck.ID,
		Type:             req.Type,
		MileageAtService: truck.CurrentMileage,
		Description:      req.Description,
		Cost:             req.Cost,
	}
	if err := uc.fleetRepo.AddMaintenanceLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// CreateTrailer registers a new trailer as available
func (uc *fleetUC) CreateTrailer(ctx context.Context, req models.CreateTrailerRequest) (*models.Trailer, error) {
	trailer := &models.Trailer{
		Plate:   req.Plate,
		Type:    req.Type,
		MaxLoad: req.MaxLoad,
		Status:  models.TrailerStatusAvailable,
	}
	if err := uc.fleetRepo.CreateTrailer(ctx, trailer); err != nil {
		return nil, err
	}
	return trailer, nil
}

// GetTrailer returns a trailer by id
func (uc *fleetUC) GetTrailer(ctx context.Context, id uuid.UUID) (*models.Trailer, error) {
	return uc.fleetRepo.GetTrailer(ctx, id)
}

// ListTrailers returns the full trailer roster
func (uc *fleetUC) ListTrailers(ctx context.Context) ([]models.Trailer, error) {
	return uc.fleetRepo.ListTrailers(ctx)
}

// UpdateTrailer merges the supplied fields onto the trailer
func (uc *fleetUC) UpdateTrailer(ctx context.Context, id uuid.UUID, req models.UpdateTrailerRequest) (*models.Trailer, error) {
	trailer, err := uc.fleetRepo.GetTrailer(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		trailer.Type = *req.Type
	}
	if req.MaxLoad != nil {
		trailer.MaxLoad = *req.MaxLoad
	}
	if req.Status != nil {
		trailer.Status = *req.Status
	}

	if err := uc.fleetRepo.UpdateTrailer(ctx, trailer); err != nil {
		return nil, err
	}
	return trailer, nil
}

// DeleteTrailer removes a trailer unless an unfinished trip still references it
func (uc *fleetUC) DeleteTrailer(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.fleetRepo.GetTrailer(ctx, id); err != nil {
		return err
	}

	active, err := uc.trips.FindActiveTripForTrailer(ctx, id)
	if err != nil {
		return err
	}
	if active != nil {
		return errs.ErrTrailerAttached
	}

	return uc.fleetRepo.DeleteTrailer(ctx, id)
}

// Summary aggregates fleet status counts for the dashboard. Results are
// cached in Redis for a short window since the dashboard polls frequently;
// cache failures fall through to the database.
func (uc *fleetUC) Summary(ctx context.Context) (*models.FleetSummary, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, summaryCacheKey); err == nil {
			var summary models.FleetSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return &summary, nil
			}
		}
	}

	trucks, err := uc.fleetRepo.CountTrucksByStatus(ctx)
	if err != nil {
		return nil, err
	}
	trailers, err := uc.fleetRepo.CountTrailersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	activeTrips, err := uc.fleetRepo.CountActiveTrips(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.FleetSummary{
		Trucks:      trucks,
		Trailers:    trailers,
		ActiveTrips: activeTrips,
		GeneratedAt: time.Now(),
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := uc.cache.Set(ctx, summaryCacheKey, payload, summaryCacheTTL); err != nil {
				logger.Warn("failed to cache fleet summary", logger.Err(err))
			}
		}
	}

	return summary, nil
}
