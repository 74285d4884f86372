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

// CreateOffer persists a new PENDING offer, indexes it for discovery and
// kicks off driver notification as a fire-and-forget side effect.
func (uc *OfferUC) CreateOffer(ctx context.Context, req *models.CreateOfferRequest, passengerID uuid.UUID) (*models.Offer, error) {
	if !utils.ValidCoordinates(req.StartLat, req.StartLon) {
		return nil, apperrors.ValidationError{Msg: "invalid origin coordinates"}
	}
	if req.Price <= 0 {
		return nil, apperrors.ValidationError{Msg: "price must be positive"}
	}

	passenger, err := uc.userRepo.FindUserByID(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	// Fall back to the account phone when the request carries none
	phone := req.PassengerPhone
	if phone == "" {
		phone = passenger.Phone
	}

	offer := &models.Offer{
		ID:             uuid.New(),
		PassengerID:    passengerID,
		StartPoint:     req.StartPoint,
		StartLat:       req.StartLat,
		StartLon:       req.StartLon,
		EndPoint:       req.EndPoint,
		EndLat:         req.EndLat,
		EndLon:         req.EndLon,
		Price:          req.Price,
		PassengerPhone: phone,
		DepartureTime:  req.DepartureTime,
		State:          models.OfferStatePending,
		Bids:           []models.Bid{},
		CreatedAt:      time.Now().UTC(),
	}

	saved, err := uc.offerRepo.Save(ctx, offer)
	if err != nil {
		return nil, err
	}

	uc.refreshCache(ctx, saved)

	// Matching runs detached from the request path: a notification failure
	// must never fail offer creation.
	go uc.notifyEligibleDrivers(context.Background(), saved)

	uc.publishEvent(constants.TopicOfferCreated, saved)

	return saved, nil
}

// GetOffer reads through the cache and enriches bids with display metadata
func (uc *OfferUC) GetOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, error) {
	offer, err := uc.readOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	uc.enrichBids(ctx, offer)
	return offer, nil
}

// GetAvailableOffers returns open offers near the driver's live position,
// falling back to the latest open offers when no position is known.
func (uc *OfferUC) GetAvailableOffers(ctx context.Context, driverID uuid.UUID) ([]*models.Offer, error) {
	var found []*models.Offer

	pos, err := uc.locationGW.GetDriverPosition(ctx, driverID)
	if err != nil {
		uc.log.WithError(err).Warn("driver position lookup failed, using fallback")
	}
	if pos != nil {
		ids, err := uc.offerCache.FindNearbyOfferIDs(ctx, pos.Latitude, pos.Longitude, uc.cfg.Offer.SearchRadiusKm)
		if err != nil {
			uc.log.WithError(err).Warn("nearby offer lookup failed, using fallback")
		}
		for _, id := range ids {
			offer, err := uc.offerRepo.FindByID(ctx, id)
			if err != nil {
				continue
			}
			found = append(found, offer)
		}
	}

	if len(found) == 0 {
		latest, err := uc.offerRepo.FindLatestOpen(ctx, 20)
		if err != nil {
			return nil, err
		}
		if pos != nil {
			latest = filterByGeohashCell(latest, pos)
		}
		found = latest
	}

	open := make([]*models.Offer, 0, len(found))
	for _, offer := range found {
		if !offer.State.IsOpen() {
			continue
		}
		uc.enrichBids(ctx, offer)
		open = append(open, offer)
	}
	return open, nil
}

// SubmitBid appends a driver's bid to the offer. Re-submission by the same
// driver moves the bid to the end of the list instead of duplicating it.
// The append itself is a single durable transaction, so interleaved
// submissions from distinct drivers each keep their own row.
func (uc *OfferUC) SubmitBid(ctx context.Context, offerID, driverID uuid.UUID) (*models.Offer, error) {
	actor, err := uc.userRepo.FindUserByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleDriver {
		return nil, apperrors.RoleError{ActorID: driverID.String(), Required: string(models.RoleDriver)}
	}

	// The snapshot is only a precheck; the durable append below re-checks
	// state under the row lock. States never leave terminal, so a cached
	// terminal state is trustworthy.
	offer, err := uc.readOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.State.IsTerminal() {
		return nil, apperrors.StateConflictError{Current: string(offer.State), Op: "submit a bid"}
	}

	if uc.cfg.Payment.EnforceBalance {
		if err := uc.checkCommissionBalance(ctx, driverID, offer.Price); err != nil {
			return nil, err
		}
	}

	saved, err := uc.offerRepo.AddBid(ctx, offerID, driverID)
	if err != nil {
		return nil, err
	}
	uc.refreshCache(ctx, saved)

	go uc.dispatchToUser(context.Background(), saved.PassengerID,
		uc.cfg.Notification.Templates.DriverApplied,
		"New bid on your offer",
		actor.FullName()+" applied for your ride.",
		map[string]string{"offer_id": offerID.String(), "driver_name": actor.FullName()},
	)

	return saved, nil
}

// SelectDriver records the passenger's choice among the bidders
func (uc *OfferUC) SelectDriver(ctx context.Context, offerID, passengerID, driverID uuid.UUID) (*models.Offer, error) {
	offer, err := uc.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.PassengerID != passengerID {
		return nil, apperrors.ValidationError{Msg: "only the offer owner may select a driver"}
	}
	if offer.State.IsTerminal() {
		return nil, apperrors.StateConflictError{Current: string(offer.State), Op: "select a driver"}
	}
	if !offer.HasBidFrom(driverID) {
		return nil, apperrors.ValidationError{Msg: "driver has not applied to this offer"}
	}

	offer.SelectedDriverID = &driverID
	offer.State = models.OfferStateDriverSelected

	saved, err := uc.offerRepo.Save(ctx, offer)
	if err != nil {
		return nil, err
	}
	uc.refreshCache(ctx, saved)

	// A selected offer is no longer open for discovery
	if err := uc.offerCache.RemoveOfferLocation(ctx, offerID); err != nil {
		uc.log.WithError(err).Warn("failed to deindex selected offer")
	}

	go uc.dispatchToUser(context.Background(), driverID,
		uc.cfg.Notification.Templates.DriverSelected,
		"You got the ride",
		"The passenger selected you for the ride.",
		map[string]string{"offer_id": offerID.String()},
	)

	return saved, nil
}

// FinalizeOffer validates the offer against the latest persisted state and
// creates the ride transactionally: either both the VALIDATED offer and its
// ride land, or neither does. Safe to retry.
func (uc *OfferUC) FinalizeOffer(ctx context.Context, offerID, passengerID, driverID uuid.UUID) (*models.Ride, error) {
	// Authoritative re-read: a caller-supplied snapshot may be stale with
	// respect to concurrent bids or a concurrent cancel.
	offer, err := uc.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.State.IsTerminal() {
		return nil, apperrors.StateConflictError{Current: string(offer.State), Op: "finalize"}
	}
	if offer.PassengerID != passengerID {
		return nil, apperrors.ValidationError{Msg: "only the offer owner may finalize"}
	}
	if !offer.HasBidFrom(driverID) {
		return nil, apperrors.ValidationError{Msg: "driver is no longer among the bidders"}
	}
	if offer.SelectedDriverID != nil && *offer.SelectedDriverID != driverID {
		return nil, apperrors.ValidationError{Msg: "driver is not the selected driver"}
	}

	if uc.cfg.Payment.EnforceBalance {
		if err := uc.collectCommission(ctx, driverID, offer.Price); err != nil {
			return nil, err
		}
	}

	offer.SelectedDriverID = &driverID
	offer.State = models.OfferStateValidated

	ride := &models.Ride{
		ID:          uuid.New(),
		OfferID:     offer.ID,
		PassengerID: offer.PassengerID,
		DriverID:    driverID,
		State:       models.RideStateCreated,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.offerRepo.FinalizeWithRide(ctx, offer, ride); err != nil {
		return nil, err
	}

	uc.refreshCache(ctx, offer)
	if err := uc.offerCache.RemoveOfferLocation(ctx, offerID); err != nil {
		uc.log.WithError(err).Warn("failed to deindex finalized offer")
	}

	go uc.dispatchToUser(context.Background(), offer.PassengerID,
		uc.cfg.Notification.Templates.RideConfirmed,
		"Driver on the way",
		"Your driver confirmed and is on the way.",
		map[string]string{"ride_id": ride.ID.String(), "driver_id": driverID.String()},
	)

	uc.publishEvent(constants.TopicOfferFinalized, offer)

	return ride, nil
}

// CancelOffer terminates a non-finalized offer. One-way: a cancelled offer
// never leaves CANCELLED.
func (uc *OfferUC) CancelOffer(ctx context.Context, offerID, passengerID uuid.UUID) (*models.Offer, error) {
	offer, err := uc.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.PassengerID != passengerID {
		return nil, apperrors.ValidationError{Msg: "only the offer owner may cancel"}
	}
	if offer.State.IsTerminal() {
		return nil, apperrors.StateConflictError{Current: string(offer.State), Op: "cancel"}
	}

	selected := offer.SelectedDriverID
	offer.State = models.OfferStateCancelled

	saved, err := uc.offerRepo.Save(ctx, offer)
	if err != nil {
		return nil, err
	}
	// A cancelled offer leaves the cache entirely; readers fall through
	// to the durable row.
	if err := uc.offerCache.EvictOffer(ctx, offerID); err != nil {
		uc.log.WithError(err).Warn("failed to evict cancelled offer")
	}
	if err := uc.offerCache.RemoveOfferLocation(ctx, offerID); err != nil {
		uc.log.WithError(err).Warn("failed to deindex cancelled offer")
	}

	if selected != nil {
		go uc.dispatchToUser(context.Background(), *selected,
			uc.cfg.Notification.Templates.RideCancelled,
			"Ride cancelled",
			"The passenger cancelled the ride.",
			map[string]string{"offer_id": offerID.String()},
		)
	}

	uc.publishEvent(constants.TopicOfferCancelled, saved)

	return saved, nil
}

// geohashPrecision 5 gives cells of roughly 5km a side, coarse enough
// for a prefilter when the geo index is unavailable.
const geohashPrecision = 5

// filterByGeohashCell keeps offers whose pickup falls in the driver's
// geohash cell or one of its eight neighbors.
func filterByGeohashCell(offers []*models.Offer, pos *models.Location) []*models.Offer {
	cell := utils.EncodeLocation(utils.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude}, geohashPrecision)
	cells := map[string]struct{}{cell: {}}
	for _, n := range utils.GeohashNeighbors(cell) {
		cells[n] = struct{}{}
	}

	kept := make([]*models.Offer, 0, len(offers))
	for _, offer := range offers {
		start := utils.EncodeLocation(utils.GeoPoint{Latitude: offer.StartLat, Longitude: offer.StartLon}, geohashPrecision)
		if _, ok := cells[start]; ok {
			kept = append(kept, offer)
		}
	}
	return kept
}

// readOffer is the cache-aside read path: cache first, durable store on
// miss, with a detached best-effort repopulate.
func (uc *OfferUC) readOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, error) {
	cached, err := uc.offerCache.GetOffer(ctx, offerID)
	if err != nil {
		uc.log.WithError(err).Warn("offer cache read failed, falling back to durable store")
	}
	if cached != nil {
		return cached, nil
	}

	offer, err := uc.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}

	go func(o models.Offer) {
		if err := uc.offerCache.SaveOffer(context.Background(), &o); err != nil {
			uc.log.WithError(err).Debug("offer cache repopulate failed")
		}
	}(*offer)

	return offer, nil
}

// refreshCache is the write-through half of the cache-aside contract:
// the durable write has already succeeded, so a cache failure only costs
// the next reader a miss.
func (uc *OfferUC) refreshCache(ctx context.Context, offer *models.Offer) {
	if err := uc.offerCache.SaveOffer(ctx, offer); err != nil {
		uc.log.WithError(err).WithField("offer_id", offer.ID).Warn("offer cache write failed")
	}
	if offer.State.IsOpen() {
		if err := uc.offerCache.SaveOfferLocation(ctx, offer.ID, offer.StartLat, offer.StartLon); err != nil {
			uc.log.WithError(err).Warn("offer geo index write failed")
		}
	}
}

// checkCommissionBalance rejects bids from drivers whose wallet cannot
// cover the platform commission for this offer
func (uc *OfferUC) checkCommissionBalance(ctx context.Context, driverID uuid.UUID, price float64) error {
	wallet, err := uc.paymentGW.GetWalletByOwnerID(ctx, driverID)
	if err != nil {
		return err
	}
	commission := price * uc.cfg.Payment.CommissionRate
	if wallet.Balance < commission {
		return apperrors.ValidationError{Msg: "insufficient balance to cover the ride commission"}
	}
	return nil
}

// collectCommission debits the platform commission from the driver's wallet
func (uc *OfferUC) collectCommission(ctx context.Context, driverID uuid.UUID, price float64) error {
	wallet, err := uc.paymentGW.GetWalletByOwnerID(ctx, driverID)
	if err != nil {
		return err
	}
	return uc.paymentGW.ProcessPayment(ctx, wallet.ID, price*uc.cfg.Payment.CommissionRate)
}

func (uc *OfferUC) publishEvent(topic string, payload interface{}) {
	if uc.eventGW == nil {
		return
	}
	if err := uc.eventGW.Publish(topic, payload); err != nil {
		uc.log.WithError(err).WithField("topic", topic).Warn("event publish failed")
	}
}
