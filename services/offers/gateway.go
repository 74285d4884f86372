package offers

import (
	"context"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// NotificationGW dispatches a templated notification. Callers treat it as a
// best-effort side effect: results are logged, never propagated.
type NotificationGW interface {
	Send(ctx context.Context, req *models.SendNotificationRequest) (bool, error)
}

// PaymentGW is the narrow wallet contract consumed by the core
type PaymentGW interface {
	GetWalletByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error)
	ProcessPayment(ctx context.Context, walletID uuid.UUID, amount float64) error
}

// EventGW publishes lifecycle events for downstream consumers
type EventGW interface {
	Publish(topic string, payload interface{}) error
}

// LocationGW exposes live driver positions to the offer flow. Backed by
// the location service's fast store in-process.
type LocationGW interface {
	// GetDriverPosition returns (nil, nil) when no live position is known.
	GetDriverPosition(ctx context.Context, driverID uuid.UUID) (*models.Location, error)
	FindNearbyDrivers(ctx context.Context, lat, lon, radiusKm float64) ([]uuid.UUID, error)
}
