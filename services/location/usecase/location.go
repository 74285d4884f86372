package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/apperrors"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/internal/utils"
)

// UpdateLocation ingests one GPS sample. The live index update and the
// buffer append are independent writes: a buffer failure does not undo the
// live position.
func (uc *LocationUC) UpdateLocation(ctx context.Context, driverID uuid.UUID, sample *models.Location) error {
	if !utils.ValidCoordinates(sample.Latitude, sample.Longitude) {
		return apperrors.ValidationError{Msg: "invalid coordinates"}
	}
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}

	if err := uc.locationRepo.SaveLiveLocation(ctx, driverID, sample.Latitude, sample.Longitude); err != nil {
		return err
	}
	if err := uc.locationRepo.AppendSample(ctx, driverID, sample); err != nil {
		uc.log.WithError(err).WithField("driver_id", driverID).Warn("sample buffer append failed")
	}
	return nil
}

// GetDriverPosition returns the driver's live position, or (nil, nil) when
// the driver is not currently tracked.
func (uc *LocationUC) GetDriverPosition(ctx context.Context, driverID uuid.UUID) (*models.Location, error) {
	return uc.locationRepo.GetLiveLocation(ctx, driverID)
}

// FindNearbyDrivers returns drivers within radiusKm of the point
func (uc *LocationUC) FindNearbyDrivers(ctx context.Context, lat, lon, radiusKm float64) ([]uuid.UUID, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Offer.SearchRadiusKm
	}
	return uc.locationRepo.FindNearbyDrivers(ctx, lat, lon, radiusKm)
}

// RemoveDriver drops the driver from the live index. Buffered samples stay
// put for the next drain cycle.
func (uc *LocationUC) RemoveDriver(ctx context.Context, driverID uuid.UUID) error {
	return uc.locationRepo.RemoveLiveLocation(ctx, driverID)
}

// GetTrajectories lists the driver's compacted trajectory records
func (uc *LocationUC) GetTrajectories(ctx context.Context, driverID uuid.UUID, limit int) ([]*models.DriverTrajectory, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.trajectoryRepo.ListByDriver(ctx, driverID, limit)
}
