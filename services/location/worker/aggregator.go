// Package worker runs the trajectory aggregation cycle: it drains the raw
// GPS buffers and compacts each into one durable record per driver.
package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/services/location"
)

// Aggregator periodically compacts buffered GPS samples into trajectory
// records. Cycles run on a single goroutine, so they never overlap: a slow
// cycle delays the next tick instead of racing it.
type Aggregator struct {
	cfg            *models.Config
	locationRepo   location.LocationRepo
	trajectoryRepo location.TrajectoryRepo
	log            *logger.AppLogger
}

// NewAggregator creates the trajectory aggregation worker
func NewAggregator(
	cfg *models.Config,
	locationRepo location.LocationRepo,
	trajectoryRepo location.TrajectoryRepo,
	log *logger.AppLogger,
) *Aggregator {
	return &Aggregator{
		cfg:            cfg,
		locationRepo:   locationRepo,
		trajectoryRepo: trajectoryRepo,
		log:            log,
	}
}

// Run executes drain cycles on the configured interval until ctx is done
func (a *Aggregator) Run(ctx context.Context) {
	log := a.log.WithComponent("trajectory_aggregator")
	interval := a.cfg.Trajectory.DrainInterval
	log.WithField("interval", interval).Info("trajectory aggregator started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("trajectory aggregator stopped")
			return
		case <-ticker.C:
			a.RunCycle(ctx)
		}
	}
}

// RunCycle drains every pending buffer once. Each driver is handled in
// isolation: a failure on one buffer leaves the rest of the cycle intact.
// The buffer is deleted before the record is persisted, so a persist
// failure loses that driver's batch rather than duplicating it later.
func (a *Aggregator) RunCycle(ctx context.Context) {
	started := time.Now()

	drivers, err := a.locationRepo.ListBufferedDrivers(ctx)
	if err != nil {
		a.log.WithError(err).Error("buffer scan failed, skipping cycle")
		return
	}
	if len(drivers) == 0 {
		return
	}

	var succeeded, failed int
	for _, driverID := range drivers {
		if err := a.drainDriver(ctx, driverID); err != nil {
			a.log.WithError(err).WithField("driver_id", driverID).Error("trajectory compaction failed")
			failed++
			continue
		}
		succeeded++
	}

	a.log.WithComponent("trajectory_aggregator").
		WithField("drivers", len(drivers)).
		WithField("succeeded", succeeded).
		WithField("failed", failed).
		WithField("elapsed", time.Since(started)).
		Info("trajectory drain cycle finished")
}

func (a *Aggregator) drainDriver(ctx context.Context, driverID uuid.UUID) error {
	points, err := a.locationRepo.DrainBuffer(ctx, driverID)
	if err != nil {
		return err
	}
	// A buffer can be empty when every sample was malformed or another
	// process already consumed it. Nothing to record.
	if len(points) == 0 {
		return nil
	}

	start, end := points[0].Timestamp, points[0].Timestamp
	for _, p := range points[1:] {
		if p.Timestamp < start {
			start = p.Timestamp
		}
		if p.Timestamp > end {
			end = p.Timestamp
		}
	}

	return a.trajectoryRepo.Insert(ctx, &models.DriverTrajectory{
		DriverID:    driverID,
		StartTime:   time.Unix(start, 0).UTC(),
		EndTime:     time.Unix(end, 0).UTC(),
		PointsCount: len(points),
		Points:      points,
	})
}
