package models

import (
	"time"

	"github.com/google/uuid"
)

// TrailerStatus represents the operational status of a trailer
type TrailerStatus string

const (
	TrailerStatusAvailable   TrailerStatus = "available"
	TrailerStatusAttached    TrailerStatus = "attached"
	TrailerStatusMaintenance TrailerStatus = "maintenance"
)

// Trailer represents a towable unit owned by the fleet
type Trailer struct {
	ID        uuid.UUID     `json:"_id" db:"id"`
	Plate     string        `json:"plate" db:"plate"`
	Type      string        `json:"type" db:"type"`
	MaxLoad   float64       `json:"maxLoad" db:"max_load"`
	Status    TrailerStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}

// CreateTrailerRequest is the payload for trailer creation
type CreateTrailerRequest struct {
	Plate   string  `json:"plate"`
	Type    string  `json:"type"`
	MaxLoad float64 `json:"maxLoad"`
}

// UpdateTrailerRequest carries the mutable trailer fields. Nil means unchanged.
type UpdateTrailerRequest struct {
	Type    *string        `json:"type"`
	MaxLoad *float64       `json:"maxLoad"`
	Status  *TrailerStatus `json:"status"`
}
