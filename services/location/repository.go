package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// LocationRepo is the Redis backed fast store: the live geo index plus the
// per-driver raw sample buffers consumed by the drain cycle.
type LocationRepo interface {
	SaveLiveLocation(ctx context.Context, driverID uuid.UUID, lat, lon float64) error
	// GetLiveLocation returns (nil, nil) when the driver has no live position.
	GetLiveLocation(ctx context.Context, driverID uuid.UUID) (*models.Location, error)
	FindNearbyDrivers(ctx context.Context, lat, lon, radiusKm float64) ([]uuid.UUID, error)
	RemoveLiveLocation(ctx context.Context, driverID uuid.UUID) error
	AppendSample(ctx context.Context, driverID uuid.UUID, sample *models.Location) error
	// ListBufferedDrivers returns the ids of drivers with pending samples.
	ListBufferedDrivers(ctx context.Context) ([]uuid.UUID, error)
	// DrainBuffer atomically reads and deletes the driver's sample buffer.
	// The delete happens before the samples are persisted anywhere, so a
	// downstream failure loses that batch.
	DrainBuffer(ctx context.Context, driverID uuid.UUID) ([]models.TrajectoryPoint, error)
}

// TrajectoryRepo is the durable store for compacted trajectory records
type TrajectoryRepo interface {
	Insert(ctx context.Context, trajectory *models.DriverTrajectory) error
	ListByDriver(ctx context.Context, driverID uuid.UUID, limit int) ([]*models.DriverTrajectory, error)
}
