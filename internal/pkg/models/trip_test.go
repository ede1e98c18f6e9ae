package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTrip(t *testing.T) {
	tests := []struct {
		name    string
		from    TripStatus
		to      TripStatus
		allowed bool
	}{
		{"to_do to in_progress", TripStatusToDo, TripStatusInProgress, true},
		{"to_do straight to finished", TripStatusToDo, TripStatusFinished, true},
		{"in_progress to finished", TripStatusInProgress, TripStatusFinished, true},
		{"in_progress back to to_do", TripStatusInProgress, TripStatusToDo, false},
		{"finished back to in_progress", TripStatusFinished, TripStatusInProgress, false},
		{"finished back to to_do", TripStatusFinished, TripStatusToDo, false},
		{"same state is idempotent", TripStatusFinished, TripStatusFinished, true},
		{"same state to_do", TripStatusToDo, TripStatusToDo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransitionTrip(tt.from, tt.to))
		})
	}
}

func TestTruckMaxLoad(t *testing.T) {
	configured := Truck{MaintenanceRules: MaintenanceRules{MaxLoadCapacity: 28000}}
	assert.Equal(t, 28000.0, configured.MaxLoad())

	unconfigured := Truck{}
	assert.Equal(t, DefaultMaxLoadCapacity, unconfigured.MaxLoad())
}
