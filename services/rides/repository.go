package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// RideRepo defines durable-store access for rides
type RideRepo interface {
	FindByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	// FindActiveByDriver returns the driver's non-terminal ride, or a
	// typed not-found when the driver has none.
	FindActiveByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Ride, error)
	// FindPickupPoint returns the start coordinates of the originating offer.
	FindPickupPoint(ctx context.Context, offerID uuid.UUID) (*models.Location, error)
	// UpdateState persists the transition guarded on the expected previous
	// state so concurrent writers cannot clobber each other.
	UpdateState(ctx context.Context, ride *models.Ride, from models.RideState) error
}
