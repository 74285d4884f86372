package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// Insert writes one compacted trajectory record. Points are stored as a
// JSONB document alongside the window columns.
func (r *TrajectoryRepo) Insert(ctx context.Context, trajectory *models.DriverTrajectory) error {
	if trajectory.ID == uuid.Nil {
		trajectory.ID = uuid.New()
	}
	if trajectory.CreatedAt.IsZero() {
		trajectory.CreatedAt = time.Now().UTC()
	}

	points, err := json.Marshal(trajectory.Points)
	if err != nil {
		return fmt.Errorf("failed to marshal trajectory points: %w", err)
	}

	query := `INSERT INTO driver_trajectory_history
		(id, driver_id, start_time, end_time, points_count, points, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.GetDB().ExecContext(ctx, query,
		trajectory.ID, trajectory.DriverID, trajectory.StartTime, trajectory.EndTime,
		trajectory.PointsCount, points, trajectory.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert trajectory: %w", err)
	}
	return nil
}

// ListByDriver returns the driver's compacted trajectories, newest first
func (r *TrajectoryRepo) ListByDriver(ctx context.Context, driverID uuid.UUID, limit int) ([]*models.DriverTrajectory, error) {
	rows, err := r.db.GetDB().QueryxContext(ctx, `
		SELECT id, driver_id, start_time, end_time, points_count, points, created_at
		FROM driver_trajectory_history
		WHERE driver_id = $1
		ORDER BY start_time DESC LIMIT $2`,
		driverID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query trajectories: %w", err)
	}
	defer rows.Close()

	var result []*models.DriverTrajectory
	for rows.Next() {
		var t models.DriverTrajectory
		var points []byte
		if err := rows.Scan(&t.ID, &t.DriverID, &t.StartTime, &t.EndTime, &t.PointsCount, &points, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trajectory: %w", err)
		}
		if err := json.Unmarshal(points, &t.Points); err != nil {
			return nil, fmt.Errorf("failed to unmarshal trajectory points: %w", err)
		}
		result = append(result, &t)
	}
	return result, rows.Err()
}
