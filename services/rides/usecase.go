package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// RideUC defines the ride lifecycle operations
type RideUC interface {
	// UpdateStatus applies one state transition on behalf of the actor.
	// Requesting the current state is a no-op that returns the ride as is.
	UpdateStatus(ctx context.Context, rideID, actorID uuid.UUID, target models.RideState) (*models.Ride, error)
	GetRide(ctx context.Context, rideID, actorID uuid.UUID) (*models.Ride, error)
	GetCurrentRideForDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error)
	GetHistoryForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Ride, error)
	// GetPartnerLocation returns the live position of the actor's
	// counterpart on the ride, with the remaining distance and ETA to
	// the pickup point. Only drivers report live positions.
	GetPartnerLocation(ctx context.Context, rideID, actorID uuid.UUID) (*models.PartnerLocation, error)
}
