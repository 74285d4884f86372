package models

import (
	"time"

	"github.com/google/uuid"
)

// RideState represents the lifecycle state of a ride
type RideState string

const (
	RideStateCreated   RideState = "CREATED"
	RideStateOngoing   RideState = "ONGOING"
	RideStateCompleted RideState = "COMPLETED"
	RideStateCancelled RideState = "CANCELLED"
)

// IsTerminal reports whether the ride can no longer be mutated
func (s RideState) IsTerminal() bool {
	return s == RideStateCompleted || s == RideStateCancelled
}

// CanTransitionTo implements the ride adjacency table. A self-transition
// is allowed and treated as a no-op by callers.
func (s RideState) CanTransitionTo(target RideState) bool {
	if s == target {
		return true
	}
	switch s {
	case RideStateCreated:
		return target == RideStateOngoing || target == RideStateCancelled
	case RideStateOngoing:
		return target == RideStateCompleted || target == RideStateCancelled
	default:
		return false
	}
}

// PartnerLocation is a live counterpart position enriched with the
// remaining distance and ETA to the ride's pickup point.
type PartnerLocation struct {
	Location
	DistanceKm float64 `json:"distance_km"`
	EtaMinutes int     `json:"eta_minutes"`
}

// Ride represents the confirmed trip created once an offer is finalized
type Ride struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OfferID     uuid.UUID `json:"offer_id" db:"offer_id"`
	PassengerID uuid.UUID `json:"passenger_id" db:"passenger_id"`
	DriverID    uuid.UUID `json:"driver_id" db:"driver_id"`
	Distance    float64   `json:"distance" db:"distance"`
	Duration    int       `json:"duration" db:"duration"`
	TimeReal    int       `json:"time_real" db:"time_real"`
	State       RideState `json:"state" db:"state"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
