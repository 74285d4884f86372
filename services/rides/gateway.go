package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// EventGW publishes ride lifecycle events for downstream consumers
type EventGW interface {
	Publish(topic string, payload interface{}) error
}

// LocationGW exposes live driver positions for partner tracking
type LocationGW interface {
	// GetDriverPosition returns (nil, nil) when no live position is known.
	GetDriverPosition(ctx context.Context, driverID uuid.UUID) (*models.Location, error)
}
