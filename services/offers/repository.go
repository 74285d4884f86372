package offers

import (
	"context"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// OfferRepo defines durable-store access for offers. The durable store is
// the source of truth; reads here always hit PostgreSQL.
type OfferRepo interface {
	// Save writes the caller's snapshot guarded on its version; a stale
	// snapshot or a terminal row surfaces as a state conflict.
	Save(ctx context.Context, offer *models.Offer) (*models.Offer, error)
	// AddBid appends one driver's bid as its own transaction so that
	// interleaved submissions never overwrite each other's rows.
	AddBid(ctx context.Context, offerID, driverID uuid.UUID) (*models.Offer, error)
	FindByID(ctx context.Context, offerID uuid.UUID) (*models.Offer, error)
	FindLatestOpen(ctx context.Context, limit int) ([]*models.Offer, error)
	// FinalizeWithRide atomically moves the offer to VALIDATED and creates
	// its ride in a single transaction.
	FinalizeWithRide(ctx context.Context, offer *models.Offer, ride *models.Ride) error
}

// OfferCache defines the expiring fast-store view of offers plus the geo
// index used for discovery. Every method is best-effort from the caller's
// point of view: cache failures never fail the primary operation.
type OfferCache interface {
	SaveOffer(ctx context.Context, offer *models.Offer) error
	// GetOffer returns (nil, nil) on a cache miss.
	GetOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, error)
	EvictOffer(ctx context.Context, offerID uuid.UUID) error
	SaveOfferLocation(ctx context.Context, offerID uuid.UUID, lat, lon float64) error
	RemoveOfferLocation(ctx context.Context, offerID uuid.UUID) error
	FindNearbyOfferIDs(ctx context.Context, lat, lon, radiusKm float64) ([]uuid.UUID, error)
}

// UserRepo is the identity/role collaborator contract plus the durable
// notification bookkeeping that rides along with dispatch.
type UserRepo interface {
	FindUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	FindUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	GetDriverProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error)
	FindDeviceToken(ctx context.Context, userID uuid.UUID) (string, error)
	GetNotificationSettings(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error)
	SaveNotification(ctx context.Context, notification *models.Notification) error
}
