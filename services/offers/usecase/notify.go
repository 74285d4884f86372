package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// notifyEligibleDrivers finds drivers near the offer origin and dispatches
// the new-offer notification to them. Runs detached from the request path;
// every failure here is logged and swallowed.
func (uc *OfferUC) notifyEligibleDrivers(ctx context.Context, offer *models.Offer) {
	if uc.notifyGW == nil || uc.locationGW == nil {
		return
	}

	log := uc.log.WithField("offer_id", offer.ID)

	nearby, err := uc.locationGW.FindNearbyDrivers(ctx, offer.StartLat, offer.StartLon, uc.cfg.Offer.SearchRadiusKm)
	if err != nil {
		log.WithError(err).Warn("nearby driver lookup failed")
	}

	eligible := uc.filterEligibleDrivers(ctx, nearby, offer.Price)

	// No drivers in radius: widen to every registered driver so a sparse
	// area still gets the offer out.
	if len(eligible) == 0 {
		all, err := uc.userRepo.FindUsersByRole(ctx, models.RoleDriver)
		if err != nil {
			log.WithError(err).Warn("driver role lookup failed, nobody notified")
			return
		}
		ids := make([]uuid.UUID, 0, len(all))
		for _, u := range all {
			ids = append(ids, u.ID)
		}
		eligible = uc.filterEligibleDrivers(ctx, ids, offer.Price)
	}

	if len(eligible) == 0 {
		log.Warn("no eligible drivers found for offer")
		return
	}

	data := map[string]string{
		"offer_id": offer.ID.String(),
		"price":    formatPrice(offer.Price),
		"start":    offer.StartPoint,
		"end":      offer.EndPoint,
	}

	recipients := make([]string, 0, len(eligible))
	for _, driver := range eligible {
		recipients = append(recipients, driver.Email)
		uc.saveNotificationHistory(ctx, driver.ID, "New ride available",
			"A ride from "+offer.StartPoint+" is available.", "OFFER", data)
	}

	ok, err := uc.notifyGW.Send(ctx, &models.SendNotificationRequest{
		Kind:       models.NotificationEmail,
		TemplateID: uc.cfg.Notification.Templates.NewOffer,
		To:         recipients,
		Data:       data,
	})
	if err != nil || !ok {
		log.WithError(err).Warn("new-offer notification dispatch failed")
		return
	}
	log.WithField("drivers", len(recipients)).Info("notified eligible drivers")
}

// filterEligibleDrivers keeps online, validated drivers; with balance
// enforcement on, drivers who cannot cover the commission are skipped
func (uc *OfferUC) filterEligibleDrivers(ctx context.Context, driverIDs []uuid.UUID, price float64) []*models.User {
	var eligible []*models.User
	for _, id := range driverIDs {
		profile, err := uc.userRepo.GetDriverProfile(ctx, id)
		if err != nil || !profile.IsOnline || !profile.IsValidated {
			continue
		}
		if uc.cfg.Payment.EnforceBalance {
			if err := uc.checkCommissionBalance(ctx, id, price); err != nil {
				continue
			}
		}
		user, err := uc.userRepo.FindUserByID(ctx, id)
		if err != nil {
			continue
		}
		eligible = append(eligible, user)
	}
	return eligible
}

// dispatchToUser saves a history row and sends through the channels the
// user has enabled. Best-effort end to end.
func (uc *OfferUC) dispatchToUser(ctx context.Context, userID uuid.UUID, templateID int, title, message string, data map[string]string) {
	if uc.notifyGW == nil {
		return
	}

	uc.saveNotificationHistory(ctx, userID, title, message, "INFO", data)

	settings, err := uc.userRepo.GetNotificationSettings(ctx, userID)
	if err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Warn("notification settings lookup failed")
		return
	}

	if settings.PushEnabled {
		token, err := uc.userRepo.FindDeviceToken(ctx, userID)
		if err == nil && token != "" {
			uc.send(ctx, models.NotificationPush, templateID, []string{token}, data)
		}
	}
	if settings.EmailEnabled {
		user, err := uc.userRepo.FindUserByID(ctx, userID)
		if err == nil {
			uc.send(ctx, models.NotificationEmail, templateID, []string{user.Email}, data)
		}
	}
}

func (uc *OfferUC) send(ctx context.Context, kind models.NotificationKind, templateID int, to []string, data map[string]string) {
	ok, err := uc.notifyGW.Send(ctx, &models.SendNotificationRequest{
		Kind:       kind,
		TemplateID: templateID,
		To:         to,
		Data:       data,
	})
	if err != nil || !ok {
		uc.log.WithError(err).WithField("kind", kind).Warn("notification dispatch failed")
	}
}

func (uc *OfferUC) saveNotificationHistory(ctx context.Context, userID uuid.UUID, title, message, kind string, data map[string]string) {
	payload, err := json.Marshal(data)
	if err != nil {
		payload = []byte("{}")
	}
	n := &models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      kind,
		DataJSON:  string(payload),
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.userRepo.SaveNotification(ctx, n); err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Warn("notification history save failed")
	}
}
