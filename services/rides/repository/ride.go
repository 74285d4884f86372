package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/apperrors"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

const rideColumns = `id, offer_id, passenger_id, driver_id, distance, duration, time_real, state, created_at, updated_at`

// FindByID loads one ride
func (r *RideRepo) FindByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	query := fmt.Sprintf(`SELECT %s FROM rides WHERE id = $1`, rideColumns)
	if err := r.db.GetDB().GetContext(ctx, &ride, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError{Entity: "ride", ID: rideID.String()}
		}
		return nil, fmt.Errorf("failed to query ride: %w", err)
	}
	return &ride, nil
}

// FindActiveByDriver returns the driver's ride still in flight
func (r *RideRepo) FindActiveByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	query := fmt.Sprintf(`SELECT %s FROM rides
		WHERE driver_id = $1 AND state IN ('CREATED', 'ONGOING')
		ORDER BY created_at DESC LIMIT 1`, rideColumns)
	if err := r.db.GetDB().GetContext(ctx, &ride, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError{Entity: "active ride"}
		}
		return nil, fmt.Errorf("failed to query active ride: %w", err)
	}
	return &ride, nil
}

// FindByUser lists rides where the user was either party, newest first
func (r *RideRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Ride, error) {
	var rides []*models.Ride
	query := fmt.Sprintf(`SELECT %s FROM rides
		WHERE passenger_id = $1 OR driver_id = $1
		ORDER BY created_at DESC LIMIT $2`, rideColumns)
	if err := r.db.GetDB().SelectContext(ctx, &rides, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to query ride history: %w", err)
	}
	return rides, nil
}

// FindPickupPoint returns the start coordinates of the offer the ride
// was created from.
func (r *RideRepo) FindPickupPoint(ctx context.Context, offerID uuid.UUID) (*models.Location, error) {
	var point struct {
		Lat float64 `db:"start_lat"`
		Lon float64 `db:"start_lon"`
	}
	query := `SELECT start_lat, start_lon FROM offers WHERE id = $1`
	if err := r.db.GetDB().GetContext(ctx, &point, query, offerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError{Entity: "offer", ID: offerID.String()}
		}
		return nil, fmt.Errorf("failed to query pickup point: %w", err)
	}
	return &models.Location{Latitude: point.Lat, Longitude: point.Lon}, nil
}

// UpdateState persists a transition guarded on the expected previous state.
// Zero rows affected means another writer got there first.
func (r *RideRepo) UpdateState(ctx context.Context, ride *models.Ride, from models.RideState) error {
	res, err := r.db.GetDB().ExecContext(ctx, `
		UPDATE rides SET state = $1, time_real = $2, updated_at = $3
		WHERE id = $4 AND state = $5`,
		ride.State, ride.TimeReal, ride.UpdatedAt, ride.ID, from,
	)
	if err != nil {
		return fmt.Errorf("failed to update ride state: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.StateConflictError{Current: string(from), Op: "update the ride"}
	}
	return nil
}
