package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/constants"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

// SaveOffer stores the full offer document under its key with the
// configured TTL. Bids ride along inside the JSON document so a cache hit
// never needs the durable store.
func (c *OfferCache) SaveOffer(ctx context.Context, offer *models.Offer) error {
	data, err := json.Marshal(offer)
	if err != nil {
		return fmt.Errorf("failed to marshal offer: %w", err)
	}
	key := fmt.Sprintf(constants.KeyOffer, offer.ID)
	if err := c.redis.Set(ctx, key, data, c.cfg.Offer.CacheTTL); err != nil {
		return fmt.Errorf("failed to cache offer: %w", err)
	}
	return nil
}

// GetOffer returns (nil, nil) on a cache miss so callers can fall back to
// the durable store without inspecting error values.
func (c *OfferCache) GetOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, error) {
	key := fmt.Sprintf(constants.KeyOffer, offerID)
	data, err := c.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached offer: %w", err)
	}
	var offer models.Offer
	if err := json.Unmarshal([]byte(data), &offer); err != nil {
		// A corrupt entry behaves like a miss; evict it so the next
		// write starts clean.
		c.log.WithError(err).WithField("offer_id", offerID).Warn("evicting corrupt cached offer")
		_ = c.redis.Delete(ctx, key)
		return nil, nil
	}
	return &offer, nil
}

// EvictOffer drops the cached document
func (c *OfferCache) EvictOffer(ctx context.Context, offerID uuid.UUID) error {
	return c.redis.Delete(ctx, fmt.Sprintf(constants.KeyOffer, offerID))
}

// SaveOfferLocation indexes the offer origin for radius discovery
func (c *OfferCache) SaveOfferLocation(ctx context.Context, offerID uuid.UUID, lat, lon float64) error {
	return c.redis.GeoAdd(ctx, constants.KeyOffersGeo, lon, lat, offerID.String())
}

// RemoveOfferLocation deindexes an offer no longer open for bids
func (c *OfferCache) RemoveOfferLocation(ctx context.Context, offerID uuid.UUID) error {
	return c.redis.GeoRemove(ctx, constants.KeyOffersGeo, offerID.String())
}

// FindNearbyOfferIDs returns ids of indexed offers within radiusKm of the
// given point, closest first. Members that fail uuid parsing are skipped.
func (c *OfferCache) FindNearbyOfferIDs(ctx context.Context, lat, lon, radiusKm float64) ([]uuid.UUID, error) {
	locations, err := c.redis.GeoSearch(ctx, constants.KeyOffersGeo, lon, lat, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to search offer index: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			c.log.WithField("member", loc.Name).Warn("skipping malformed offer index member")
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
