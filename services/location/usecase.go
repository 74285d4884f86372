package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// LocationUC defines GPS ingest and trajectory read operations
type LocationUC interface {
	// UpdateLocation records one GPS sample: it refreshes the driver's
	// live position and appends the sample to the raw buffer drained by
	// the aggregation cycle.
	UpdateLocation(ctx context.Context, driverID uuid.UUID, sample *models.Location) error
	GetDriverPosition(ctx context.Context, driverID uuid.UUID) (*models.Location, error)
	FindNearbyDrivers(ctx context.Context, lat, lon, radiusKm float64) ([]uuid.UUID, error)
	// RemoveDriver drops the driver from the live index, e.g. when going
	// offline.
	RemoveDriver(ctx context.Context, driverID uuid.UUID) error
	GetTrajectories(ctx context.Context, driverID uuid.UUID, limit int) ([]*models.DriverTrajectory, error)
}
