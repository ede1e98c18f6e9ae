package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle state of a trip
type TripStatus string

const (
	TripStatusToDo       TripStatus = "to_do"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusFinished   TripStatus = "finished"
)

// allowedTripTransitions is the forward-only trip state machine. A trip may
// skip in_progress when a dispatcher closes it out directly, but nothing
// leaves finished.
var allowedTripTransitions = map[TripStatus][]TripStatus{
	TripStatusToDo:       {TripStatusInProgress, TripStatusFinished},
	TripStatusInProgress: {TripStatusFinished},
	TripStatusFinished:   {},
}

// CanTransitionTrip reports whether from -> to is a permitted status change.
// Same-state writes are permitted so that repeated finish calls stay
// idempotent.
func CanTransitionTrip(from, to TripStatus) bool {
	if from == to {
		return true
	}
	for _, s := range allowedTripTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Trip represents a haul assignment: one driver, one truck, optionally one
// trailer. Truck and trailer hold no back-reference to the trip; the active
// trip for a resource is derived by querying trips with status != finished.
type Trip struct {
	ID            uuid.UUID  `json:"_id" db:"id"`
	DriverID      uuid.UUID  `json:"driver" db:"driver_id"`
	TruckID       uuid.UUID  `json:"truck" db:"truck_id"`
	TrailerID     *uuid.UUID `json:"trailer" db:"trailer_id"`
	StartLocation string     `json:"startLocation" db:"start_location"`
	EndLocation   string     `json:"endLocation" db:"end_location"`
	CargoType     string     `json:"cargoType" db:"cargo_type"`
	CargoWeight   float64    `json:"cargoWeight" db:"cargo_weight"`
	Description   string     `json:"description,omitempty" db:"description"`
	Status        TripStatus `json:"status" db:"status"`
	StartMileage  float64    `json:"startMileage" db:"start_mileage"`
	EndMileage    *float64   `json:"endMileage,omitempty" db:"end_mileage"`
	FuelConsumed  *float64   `json:"fuelConsumed,omitempty" db:"fuel_consumed"`
	VehicleIssues *string    `json:"vehicleIssues,omitempty" db:"vehicle_issues"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// DriverRef is the populated driver summary embedded in trip responses
type DriverRef struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// TruckRef is the populated truck summary embedded in trip responses
type TruckRef struct {
	ID             uuid.UUID `json:"_id"`
	Plate          string    `json:"plate"`
	Model          string    `json:"model"`
	CurrentMileage float64   `json:"currentMileage"`
	Photo          string    `json:"photo"`
}

// TrailerRef is the populated trailer summary embedded in trip responses
type TrailerRef struct {
	ID    uuid.UUID `json:"_id"`
	Plate string    `json:"plate"`
	Type  string    `json:"type"`
}

// TripDetail is a trip populated with its referenced records
type TripDetail struct {
	Trip
	Driver  DriverRef   `json:"driver"`
	Truck   TruckRef    `json:"truck"`
	Trailer *TrailerRef `json:"trailer"`
}

// CreateTripRequest is the payload for trip creation
type CreateTripRequest struct {
	DriverID      uuid.UUID  `json:"driverId"`
	TruckID       uuid.UUID  `json:"truckId"`
	TrailerID     *uuid.UUID `json:"trailerId"`
	StartLocation string     `json:"startLocation"`
	EndLocation   string     `json:"endLocation"`
	CargoType     string     `json:"cargoType"`
	CargoWeight   float64    `json:"cargoWeight"`
	Description   string     `json:"description"`
}

// UpdateTripRequest carries a partial trip update. Nil means unchanged.
type UpdateTripRequest struct {
	StartLocation *string     `json:"startLocation"`
	EndLocation   *string     `json:"endLocation"`
	CargoType     *string     `json:"cargoType"`
	CargoWeight   *float64    `json:"cargoWeight"`
	Description   *string     `json:"description"`
	Status        *TripStatus `json:"status"`
	EndMileage    *float64    `json:"endMileage"`
	FuelConsumed  *float64    `json:"fuelConsumed"`
	VehicleIssues *string     `json:"vehicleIssues"`
}

// TripListParams are the listing/search parameters for trips
type TripListParams struct {
	RequesterID   uuid.UUID
	RequesterRole string
	Page          int
	Limit         int
	SortBy        string
	Order         string
	Search        string
	Status        string
}

// PageMeta is pagination metadata returned alongside list payloads
type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Limit      int `json:"limit"`
}

// TripPage is a paginated list of trips
type TripPage struct {
	Data []TripDetail `json:"data"`
	Meta PageMeta     `json:"meta"`
}

// FleetSummary aggregates resource status counts for the dashboard
type FleetSummary struct {
	Trucks      map[string]int `json:"trucks"`
	Trailers    map[string]int `json:"trailers"`
	ActiveTrips int            `json:"activeTrips"`
	GeneratedAt time.Time      `json:"generatedAt"`
}
