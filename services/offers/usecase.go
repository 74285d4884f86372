package offers

import (
	"context"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// OfferUC defines the offer lifecycle operations
type OfferUC interface {
	CreateOffer(ctx context.Context, req *models.CreateOfferRequest, passengerID uuid.UUID) (*models.Offer, error)
	GetOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, error)
	GetAvailableOffers(ctx context.Context, driverID uuid.UUID) ([]*models.Offer, error)
	SubmitBid(ctx context.Context, offerID, driverID uuid.UUID) (*models.Offer, error)
	SelectDriver(ctx context.Context, offerID, passengerID, driverID uuid.UUID) (*models.Offer, error)
	FinalizeOffer(ctx context.Context, offerID, passengerID, driverID uuid.UUID) (*models.Ride, error)
	CancelOffer(ctx context.Context, offerID, passengerID uuid.UUID) (*models.Offer, error)
}
