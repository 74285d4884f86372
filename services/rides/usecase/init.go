// Package usecase implements the ride lifecycle: a small state machine
// over CREATED, ONGOING, COMPLETED and CANCELLED with per-party rules.
package usecase

import (
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/services/rides"
)

// RideUC implements the rides.RideUC interface
type RideUC struct {
	cfg        *models.Config
	rideRepo   rides.RideRepo
	eventGW    rides.EventGW
	locationGW rides.LocationGW
	log        *logger.AppLogger
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	eventGW rides.EventGW,
	locationGW rides.LocationGW,
	log *logger.AppLogger,
) *RideUC {
	return &RideUC{
		cfg:        cfg,
		rideRepo:   rideRepo,
		eventGW:    eventGW,
		locationGW: locationGW,
		log:        log,
	}
}
