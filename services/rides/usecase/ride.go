package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/apperrors"
	"github.com/hailgo/hailcore/internal/pkg/constants"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/internal/utils"
)

// UpdateStatus applies one transition of the ride state machine. The actor
// must be a party to the ride; passengers may only cancel, and only before
// pickup. Requesting the current state is an idempotent no-op.
func (uc *RideUC) UpdateStatus(ctx context.Context, rideID, actorID uuid.UUID, target models.RideState) (*models.Ride, error) {
	ride, err := uc.rideRepo.FindByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := requireParty(ride, actorID); err != nil {
		return nil, err
	}

	if ride.State == target {
		return ride, nil
	}

	// Passengers hold exactly one lever: cancelling before pickup.
	if actorID == ride.PassengerID {
		if target != models.RideStateCancelled {
			return nil, apperrors.PolicyViolationError{Msg: "passengers may only cancel a ride"}
		}
		if ride.State != models.RideStateCreated {
			return nil, apperrors.PolicyViolationError{Msg: "the ride can no longer be cancelled by the passenger"}
		}
	}

	if !ride.State.CanTransitionTo(target) {
		return nil, apperrors.InvalidTransitionError{From: string(ride.State), To: string(target)}
	}

	from := ride.State
	ride.State = target
	ride.UpdatedAt = time.Now().UTC()
	if target == models.RideStateCompleted {
		ride.TimeReal = int(time.Since(ride.CreatedAt).Seconds())
	}

	if err := uc.rideRepo.UpdateState(ctx, ride, from); err != nil {
		return nil, err
	}

	uc.log.WithField("ride_id", ride.ID).
		WithField("from", from).
		WithField("to", target).
		Info("ride state changed")
	uc.publishEvent(constants.TopicRideStatusChanged, ride)

	return ride, nil
}

// GetRide returns the ride to one of its parties
func (uc *RideUC) GetRide(ctx context.Context, rideID, actorID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.FindByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := requireParty(ride, actorID); err != nil {
		return nil, err
	}
	return ride, nil
}

// GetCurrentRideForDriver returns the driver's active ride
func (uc *RideUC) GetCurrentRideForDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error) {
	return uc.rideRepo.FindActiveByDriver(ctx, driverID)
}

// GetHistoryForUser lists the user's past rides, newest first
func (uc *RideUC) GetHistoryForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Ride, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.rideRepo.FindByUser(ctx, userID, limit)
}

// GetPartnerLocation returns the live position of the actor's counterpart
// with the remaining distance and ETA to the pickup point. Only drivers
// report positions, so a driver asking for the passenger gets a typed
// not-found.
func (uc *RideUC) GetPartnerLocation(ctx context.Context, rideID, actorID uuid.UUID) (*models.PartnerLocation, error) {
	ride, err := uc.rideRepo.FindByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := requireParty(ride, actorID); err != nil {
		return nil, err
	}
	if actorID != ride.PassengerID {
		return nil, apperrors.NotFoundError{Entity: "partner location"}
	}

	pos, err := uc.locationGW.GetDriverPosition(ctx, ride.DriverID)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, apperrors.NotFoundError{Entity: "partner location", ID: ride.DriverID.String()}
	}

	partner := &models.PartnerLocation{Location: *pos}
	pickup, err := uc.rideRepo.FindPickupPoint(ctx, ride.OfferID)
	if err != nil {
		// The position alone is still useful to the caller.
		uc.log.WithError(err).WithField("ride_id", ride.ID).Warn("failed to resolve pickup point")
		return partner, nil
	}
	partner.DistanceKm = utils.CalculateDistance(
		utils.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude},
		utils.GeoPoint{Latitude: pickup.Latitude, Longitude: pickup.Longitude},
	)
	partner.EtaMinutes = utils.EstimateEtaMinutes(partner.DistanceKm)
	return partner, nil
}

func requireParty(ride *models.Ride, actorID uuid.UUID) error {
	if actorID != ride.PassengerID && actorID != ride.DriverID {
		return apperrors.AccessDeniedError{Msg: "actor is not a party to this ride"}
	}
	return nil
}

func (uc *RideUC) publishEvent(topic string, payload interface{}) {
	if uc.eventGW == nil {
		return
	}
	if err := uc.eventGW.Publish(topic, payload); err != nil {
		uc.log.WithError(err).WithField("topic", topic).Warn("event publish failed")
	}
}
