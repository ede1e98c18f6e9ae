package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/models"
)

// TripRepo is the PostgreSQL trip repository
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// sortColumns whitelists the sortable trip fields; anything else falls back
// to createdAt.
var sortColumns = map[string]string{
	"createdAt":     "t.created_at",
	"updatedAt":     "t.updated_at",
	"status":        "t.status",
	"startLocation": "t.start_location",
	"endLocation":   "t.end_location",
	"cargoType":     "t.cargo_type",
	"cargoWeight":   "t.cargo_weight",
	"startMileage":  "t.start_mileage",
	"endMileage":    "t.end_mileage",
}

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	trip.ID = uuid.New()
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	query := `
		INSERT INTO trips (
			id, driver_id, truck_id, trailer_id,
			start_location, end_location, cargo_type, cargo_weight, description,
			status, start_mileage, end_mileage, fuel_consumed, vehicle_issues,
			created_at, updated_at
		) VALUES (
			:id, :driver_id, :truck_id, :trailer_id,
			:start_location, :end_location, :cargo_type, :cargo_weight, :description,
			:status, :start_mileage, :end_mileage, :fuel_consumed, :vehicle_issues,
			:created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, trip); err != nil {
		return nil, fmt.Errorf("failed to insert trip: %w", err)
	}
	return trip, nil
}

// GetTripByID retrieves a trip by id
func (r *TripRepo) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, driver_id, truck_id, trailer_id,
			start_location, end_location, cargo_type, cargo_weight, description,
			status, start_mileage, end_mileage, fuel_consumed, vehicle_issues,
			created_at, updated_at
		FROM trips
		WHERE id = $1
	`

	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

const tripDetailColumns = `
	t.id, t.driver_id, t.truck_id, t.trailer_id,
	t.start_location, t.end_location, t.cargo_type, t.cargo_weight, t.description,
	t.status, t.start_mileage, t.end_mileage, t.fuel_consumed, t.vehicle_issues,
	t.created_at, t.updated_at,
	u.name, u.email,
	k.plate, k.model, k.current_mileage, k.photo,
	r.plate, r.type
`

const tripDetailFrom = `
	FROM trips t
	JOIN users u ON u.id = t.driver_id
	JOIN trucks k ON k.id = t.truck_id
	LEFT JOIN trailers r ON r.id = t.trailer_id
`

func scanTripDetail(row interface{ Scan(...interface{}) error }) (*models.TripDetail, error) {
	var d models.TripDetail
	var description sql.NullString
	var endMileage, fuelConsumed sql.NullFloat64
	var vehicleIssues sql.NullString
	var trailerPlate, trailerType sql.NullString

	err := row.Scan(
		&d.ID,
		&d.DriverID,
		&d.TruckID,
		&d.TrailerID,
		&d.StartLocation,
		&d.EndLocation,
		&d.CargoType,
		&d.CargoWeight,
		&description,
		&d.Status,
		&d.StartMileage,
		&endMileage,
		&fuelConsumed,
		&vehicleIssues,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Driver.Name,
		&d.Driver.Email,
		&d.Truck.Plate,
		&d.Truck.Model,
		&d.Truck.CurrentMileage,
		&d.Truck.Photo,
		&trailerPlate,
		&trailerType,
	)
	if err != nil {
		return nil, err
	}

	d.Description = description.String
	if endMileage.Valid {
		d.EndMileage = &endMileage.Float64
	}
	if fuelConsumed.Valid {
		d.FuelConsumed = &fuelConsumed.Float64
	}
	if vehicleIssues.Valid {
		d.VehicleIssues = &vehicleIssues.String
	}

	d.Driver.ID = d.DriverID
	d.Truck.ID = d.TruckID
	if d.TrailerID != nil {
		d.Trailer = &models.TrailerRef{
			ID:    *d.TrailerID,
			Plate: trailerPlate.String,
			Type:  trailerType.String,
		}
	}
	return &d, nil
}

// GetTripDetail retrieves a trip populated with its driver, truck and trailer
func (r *TripRepo) GetTripDetail(ctx context.Context, id uuid.UUID) (*models.TripDetail, error) {
	query := "SELECT " + tripDetailColumns + tripDetailFrom + " WHERE t.id = $1"

	detail, err := scanTripDetail(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip detail: %w", err)
	}
	return detail, nil
}

// ListTrips searches, sorts and paginates trips, returning the page together
// with the total row count for the filter.
func (r *TripRepo) ListTrips(ctx context.Context, params models.TripListParams) ([]models.TripDetail, int, error) {
	var conditions []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.RequesterRole == models.RoleDriver {
		conditions = append(conditions, "t.driver_id = "+arg(params.RequesterID))
	}
	if params.Status != "" {
		conditions = append(conditions, "t.status = "+arg(params.Status))
	}
	if params.Search != "" {
		pattern := arg("%" + params.Search + "%")
		conditions = append(conditions, fmt.Sprintf(
			"(t.start_location ILIKE %[1]s OR t.end_location ILIKE %[1]s OR t.cargo_type ILIKE %[1]s OR u.name ILIKE %[1]s OR k.plate ILIKE %[1]s)",
			pattern,
		))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*)" + tripDetailFrom + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	sortColumn, ok := sortColumns[params.SortBy]
	if !ok {
		sortColumn = "t.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(params.Order, "asc") {
		direction = "ASC"
	}

	offset := (params.Page - 1) * params.Limit
	query := fmt.Sprintf(
		"SELECT %s %s %s ORDER BY %s %s LIMIT %s OFFSET %s",
		tripDetailColumns, tripDetailFrom, where,
		sortColumn, direction,
		arg(params.Limit), arg(offset),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]models.TripDetail, 0, params.Limit)
	for rows.Next() {
		detail, err := scanTripDetail(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, *detail)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return trips, total, nil
}

// UpdateTrip persists the mutable trip fields
func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	trip.UpdatedAt = time.Now()

	query := `
		UPDATE trips SET
			start_location = :start_location,
			end_location = :end_location,
			cargo_type = :cargo_type,
			cargo_weight = :cargo_weight,
			description = :description,
			status = :status,
			end_mileage = :end_mileage,
			fuel_consumed = :fuel_consumed,
			vehicle_issues = :vehicle_issues,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, trip)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errs.ErrTripNotFound
	}
	return nil
}

// DeleteTrip removes a trip record
func (r *TripRepo) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errs.ErrTripNotFound
	}
	return nil
}

// FindActiveTripForTruck returns the non-finished trip referencing the
// truck, or nil when there is none.
func (r *TripRepo) FindActiveTripForTruck(ctx context.Context, truckID uuid.UUID) (*models.Trip, error) {
	return r.findActiveTrip(ctx, "truck_id", truckID)
}

// FindActiveTripForTrailer returns the non-finished trip referencing the
// trailer, or nil when there is none.
func (r *TripRepo) FindActiveTripForTrailer(ctx context.Context, trailerID uuid.UUID) (*models.Trip, error) {
	return r.findActiveTrip(ctx, "trailer_id", trailerID)
}

func (r *TripRepo) findActiveTrip(ctx context.Context, column string, resourceID uuid.UUID) (*models.Trip, error) {
	query := fmt.Sprintf(`
		SELECT id, driver_id, truck_id, trailer_id,
			start_location, end_location, cargo_type, cargo_weight, description,
			status, start_mileage, end_mileage, fuel_consumed, vehicle_issues,
			created_at, updated_at
		FROM trips
		WHERE %s = $1 AND status != 'finished'
		ORDER BY created_at DESC
		LIMIT 1
	`, column)

	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, query, resourceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active trip: %w", err)
	}
	return &trip, nil
}
