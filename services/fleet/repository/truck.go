package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/fleetops/fleetops/internal/pkg/errs"
	"github.com/fleetops/fleetops/internal/pkg/models"
)

// uniqueViolation is the PostgreSQL error code for duplicate keys
const uniqueViolation = "23505"

// FleetRepo is the PostgreSQL truck and trailer repository. It also provides
// the conditional claim/release writes the trip engine allocates with.
type FleetRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(cfg *models.Config, db *sqlx.DB) *FleetRepo {
	return &FleetRepo{
		cfg: cfg,
		db:  db,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// truckRow is the flat scan target for the trucks table
type truckRow struct {
	ID                uuid.UUID          `db:"id"`
	Plate             string             `db:"plate"`
	Model             string             `db:"model"`
	VIN               string             `db:"vin"`
	Photo             string             `db:"photo"`
	Status            models.TruckStatus `db:"status"`
	CurrentMileage    float64            `db:"current_mileage"`
	EngineHours       float64            `db:"engine_hours"`
	ServiceIntervalKm float64            `db:"service_interval_km"`
	MaxLoadCapacity   float64            `db:"max_load_capacity"`
	CreatedAt         time.Time          `db:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at"`
}

func (r truckRow) toModel() models.Truck {
	return models.Truck{
		ID:             r.ID,
		Plate:          r.Plate,
		Model:          r.Model,
		VIN:            r.VIN,
		Photo:          r.Photo,
		Status:         r.Status,
		CurrentMileage: r.CurrentMileage,
		EngineHours:    r.EngineHours,
		MaintenanceRules: models.MaintenanceRules{
			ServiceIntervalKm: r.ServiceIntervalKm,
			MaxLoadCapacity:   r.MaxLoadCapacity,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func rowFromTruck(t *models.Truck) truckRow {
	return truckRow{
		ID:                t.ID,
		Plate:             t.Plate,
		Model:             t.Model,
		VIN:               t.VIN,
		Photo:             t.Photo,
		Status:            t.Status,
		CurrentMileage:    t.CurrentMileage,
		EngineHours:       t.EngineHours,
		ServiceIntervalKm: t.MaintenanceRules.ServiceIntervalKm,
		MaxLoadCapacity:   t.MaintenanceRules.MaxLoadCapacity,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

const truckColumns = `
	id, plate, model, vin, photo, status, current_mileage, engine_hours,
	service_interval_km, max_load_capacity, created_at, updated_at
`

// CreateTruck inserts a new truck. Plates are stored uppercase so the unique
// index catches case-variant duplicates.
func (r *FleetRepo) CreateTruck(ctx context.Context, truck *models.Truck) error {
	truck.ID = uuid.New()
	truck.Plate = strings.ToUpper(truck.Plate)
	now := time.Now()
	truck.CreatedAt = now
	truck.UpdatedAt = now

	query := `
		INSERT INTO trucks (
			id, plate, model, vin, photo, status, current_mileage, engine_hours,
			service_interval_km, max_load_capacity, created_at, updated_at
		) VALUES (
			:id, :plate, :model, :vin, :photo, :status, :current_mileage, :engine_hours,
			:service_interval_km, :max_load_capacity, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rowFromTruck(truck)); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrTruckPlateExists
		}
		return fmt.Errorf("failed to insert truck: %w", err)
	}
	return nil
}

// GetTruck retrieves a truck by id
func (r *FleetRepo) GetTruck(ctx context.Context, id uuid.UUID) (*models.Truck, error) {
	query := "SELECT " + truckColumns + " FROM trucks WHERE id = $1"

	var row truckRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrTruckNotFound
		}
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}
	truck := row.toModel()
	return &truck, nil
}

// ListTrucks searches and paginates trucks, returning the page together with
// the total row count for the filter.
func (r *FleetRepo) ListTrucks(ctx context.Context, params models.TruckListParams) ([]models.Truck, int, error) {
	var conditions []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.Status != "" {
		conditions = append(conditions, "status = "+arg(params.Status))
	}
	if params.Search != "" {
		pattern := arg("%" + params.Search + "%")
		conditions = append(conditions, fmt.Sprintf(
			"(plate ILIKE %[1]s OR model ILIKE %[1]s OR vin ILIKE %[1]s)", pattern))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM trucks"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count trucks: %w", err)
	}

	offset := (params.Page - 1) * params.Limit
	query := fmt.Sprintf(
		"SELECT %s FROM trucks %s ORDER BY created_at DESC LIMIT %s OFFSET %s",
		truckColumns, where, arg(params.Limit), arg(offset),
	)

	var rows []truckRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list trucks: %w", err)
	}

	trucks := make([]models.Truck, 0, len(rows))
	for _, row := range rows {
		trucks = append(trucks, row.toModel())
	}
	return trucks, total, nil
}

// UpdateTruck persists the mutable truck fields
func (r *FleetRepo) UpdateTruck(ctx context.Context, truck *models.Truck) error {
	truck.UpdatedAt = time.Now()

	query := `
		UPDATE trucks SET
			model = :model,
			vin = :vin,
			photo = :photo,
			status = :status,
			current_mileage = :current_mileage,
			engine_hours = :engine_hours,
			service_interval_km = :service_interval_km,
			max_load_capacity = :max_load_capacity,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, rowFromTruck(truck))
	if err != nil {
		return fmt.Errorf("failed to update truck: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errs.ErrTruckNotFound
	}
	return nil
}

// DeleteTruck removes a truck record and its maintenance history
func (r *FleetRepo) DeleteTruck(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trucks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete truck: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errs.ErrTruckNotFound
	}
	return nil
}

// AddMaintenanceLog appends a service record for a truck
func (r *FleetRepo) AddMaintenanceLog(ctx context.Context, log *models.MaintenanceLog) error {
	log.ID = uuid.New()
	log.CreatedAt = time.Now()

	query := `
		INSERT INTO truck_maintenance_logs (
			id, truck_id, type, mileage_at_service, description, cost, created_at
		) VALUES (
			:id, :truck_id, :type, :mileage_at_service, :description, :cost, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("failed to insert maintenance log: %w", err)
	}
	return nil
}

// ListMaintenanceLogs returns a truck's service records, newest first
func (r *FleetRepo) ListMaintenanceLogs(ctx context.Context, truckID uuid.UUID) ([]models.MaintenanceLog, error) {
	query := `
		SELECT id, truck_id, type, mileage_at_service, description, cost, created_at
		FROM truck_maintenance_logs
		WHERE truck_id = $1
		ORDER BY created_at DESC
	`
	logs := []models.MaintenanceLog{}
	if err := r.db.SelectContext(ctx, &logs, query, truckID); err != nil {
		return nil, fmt.Errorf("failed to list maintenance logs: %w", err)
	}
	return logs, nil
}

// ClaimTruck conditionally marks an available truck as on_trip. It reports
// false when the truck was no longer available, which is how concurrent
// allocations lose the race.
func (r *FleetRepo) ClaimTruck(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trucks SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		models.TruckStatusOnTrip, id, models.TruckStatusAvailable,
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim truck: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to claim truck: %w", err)
	}
	return affected == 1, nil
}

// ReleaseTruck marks an on_trip truck as available again. Releasing a truck
// that is not on a trip is a no-op, which keeps compensations idempotent.
func (r *FleetRepo) ReleaseTruck(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE trucks SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		models.TruckStatusAvailable, id, models.TruckStatusOnTrip,
	)
	if err != nil {
		return fmt.Errorf("failed to release truck: %w", err)
	}
	return nil
}

// SetTruckMileage rolls a finished trip's end mileage onto the truck
func (r *FleetRepo) SetTruckMileage(ctx context.Context, id uuid.UUID, mileage float64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trucks SET current_mileage = $1, updated_at = NOW() WHERE id = $2`,
		mileage, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set truck mileage: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errs.ErrTruckNotFound
	}
	return nil
}
