// Package usecase implements GPS ingest. Each accepted sample lands in two
// places: the live geo index read by matching and partner tracking, and
// the raw per-driver buffer compacted by the drain cycle. The usecase also
// serves as the in-process location gateway of the other services.
package usecase

import (
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/services/location"
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	cfg            *models.Config
	locationRepo   location.LocationRepo
	trajectoryRepo location.TrajectoryRepo
	log            *logger.AppLogger
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	cfg *models.Config,
	locationRepo location.LocationRepo,
	trajectoryRepo location.TrajectoryRepo,
	log *logger.AppLogger,
) *LocationUC {
	return &LocationUC{
		cfg:            cfg,
		locationRepo:   locationRepo,
		trajectoryRepo: trajectoryRepo,
		log:            log,
	}
}
