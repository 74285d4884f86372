package models

import (
	"time"

	"github.com/google/uuid"
)

// TrajectoryPoint is one compacted GPS sample
type TrajectoryPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Timestamp int64   `json:"ts"` // unix seconds
}

// DriverTrajectory is one compacted record per driver per drain cycle.
// Records are written once by the aggregation pipeline and never updated.
type DriverTrajectory struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	DriverID    uuid.UUID         `json:"driver_id" db:"driver_id"`
	StartTime   time.Time         `json:"start_time" db:"start_time"`
	EndTime     time.Time         `json:"end_time" db:"end_time"`
	PointsCount int               `json:"points_count" db:"points_count"`
	Points      []TrajectoryPoint `json:"points"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}

// Location represents a geographical position
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}
