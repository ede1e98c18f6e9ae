package models

import (
	"time"

	"github.com/google/uuid"
)

// TruckStatus represents the operational status of a truck
type TruckStatus string

const (
	TruckStatusAvailable   TruckStatus = "available"
	TruckStatusOnTrip      TruckStatus = "on_trip"
	TruckStatusMaintenance TruckStatus = "maintenance"
	TruckStatusRetired     TruckStatus = "retired"
)

// DefaultMaxLoadCapacity is the load ceiling in kilograms applied when a
// truck has no explicit capacity configured.
const DefaultMaxLoadCapacity float64 = 40000

// MaintenanceRules holds the per-truck maintenance thresholds
type MaintenanceRules struct {
	ServiceIntervalKm float64 `json:"serviceIntervalKm"`
	MaxLoadCapacity   float64 `json:"maxLoadCapacity"`
}

// Truck represents a vehicle owned by the fleet
type Truck struct {
	ID                 uuid.UUID        `json:"_id" db:"id"`
	Plate              string           `json:"plate" db:"plate"`
	Model              string           `json:"model" db:"model"`
	VIN                string           `json:"vin,omitempty" db:"vin"`
	Photo              string           `json:"photo" db:"photo"`
	Status             TruckStatus      `json:"status" db:"status"`
	CurrentMileage     float64          `json:"currentMileage" db:"current_mileage"`
	EngineHours        float64          `json:"engineHours" db:"engine_hours"`
	MaintenanceRules   MaintenanceRules `json:"maintenanceRules"`
	MaintenanceHistory []MaintenanceLog `json:"maintenanceHistory,omitempty"`
	CreatedAt          time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time        `json:"updatedAt" db:"updated_at"`
}

// MaxLoad returns the effective load ceiling for the truck
func (t *Truck) MaxLoad() float64 {
	if t.MaintenanceRules.MaxLoadCapacity > 0 {
		return t.MaintenanceRules.MaxLoadCapacity
	}
	return DefaultMaxLoadCapacity
}

// MaintenanceLog is one service record for a truck
type MaintenanceLog struct {
	ID               uuid.UUID `json:"_id" db:"id"`
	TruckID          uuid.UUID `json:"truck" db:"truck_id"`
	Type             string    `json:"type" db:"type"`
	MileageAtService float64   `json:"mileageAtService" db:"mileage_at_service"`
	Description      string    `json:"description,omitempty" db:"description"`
	Cost             float64   `json:"cost" db:"cost"`
	CreatedAt        time.Time `json:"date" db:"created_at"`
}

// CreateTruckRequest is the payload for truck creation
type CreateTruckRequest struct {
	Plate             string  `json:"plate"`
	Model             string  `json:"model"`
	VIN               string  `json:"vin"`
	Photo             string  `json:"photo"`
	CurrentMileage    float64 `json:"currentMileage"`
	EngineHours       float64 `json:"engineHours"`
	ServiceIntervalKm float64 `json:"serviceIntervalKm"`
	MaxLoadCapacity   float64 `json:"maxLoadCapacity"`
}

// UpdateTruckRequest carries the mutable truck fields. Nil means unchanged.
type UpdateTruckRequest struct {
	Model             *string      `json:"model"`
	VIN               *string      `json:"vin"`
	Photo             *string      `json:"photo"`
	Status            *TruckStatus `json:"status"`
	CurrentMileage    *float64     `json:"currentMileage"`
	EngineHours       *float64     `json:"engineHours"`
	ServiceIntervalKm *float64     `json:"serviceIntervalKm"`
	MaxLoadCapacity   *float64     `json:"maxLoadCapacity"`
}

// MaintenanceLogRequest is the payload for appending a maintenance record
type MaintenanceLogRequest struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// TruckListParams are the listing/search parameters for trucks
type TruckListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// TruckPage is a paginated list of trucks
type TruckPage struct {
	Data []Truck  `json:"data"`
	Meta PageMeta `json:"meta"`
}
