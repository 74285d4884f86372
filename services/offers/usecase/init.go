package usecase

import (
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/services/offers"
)

// OfferUC implements the offers.OfferUC interface
type OfferUC struct {
	cfg        *models.Config
	offerRepo  offers.OfferRepo
	offerCache offers.OfferCache
	userRepo   offers.UserRepo
	notifyGW   offers.NotificationGW
	paymentGW  offers.PaymentGW
	eventGW    offers.EventGW
	locationGW offers.LocationGW
	log        *logger.AppLogger
}

// NewOfferUC creates a new offer use case
func NewOfferUC(
	cfg *models.Config,
	offerRepo offers.OfferRepo,
	offerCache offers.OfferCache,
	userRepo offers.UserRepo,
	notifyGW offers.NotificationGW,
	paymentGW offers.PaymentGW,
	eventGW offers.EventGW,
	locationGW offers.LocationGW,
	log *logger.AppLogger,
) *OfferUC {
	return &OfferUC{
		cfg:        cfg,
		offerRepo:  offerRepo,
		offerCache: offerCache,
		userRepo:   userRepo,
		notifyGW:   notifyGW,
		paymentGW:  paymentGW,
		eventGW:    eventGW,
		locationGW: locationGW,
		log:        log,
	}
}
