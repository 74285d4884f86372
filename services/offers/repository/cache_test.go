package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailgo/hailcore/internal/pkg/database"
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

func newTestCache(t *testing.T) (*OfferCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	cfg := &models.Config{Offer: models.OfferConfig{CacheTTL: 15 * time.Minute}}
	log := logger.NewAppLogger(models.AppConfig{Debug: true})
	return NewOfferCache(cfg, client, log), mr
}

func TestOfferCacheRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	offer := &models.Offer{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		StartPoint:  "Kemang",
		State:       models.OfferStateBidReceived,
		Bids:        []models.Bid{{DriverID: uuid.New(), Position: 0}},
	}

	require.NoError(t, cache.SaveOffer(ctx, offer))

	got, err := cache.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, offer.ID, got.ID)
	assert.Equal(t, offer.State, got.State)
	require.Len(t, got.Bids, 1)
	assert.Equal(t, offer.Bids[0].DriverID, got.Bids[0].DriverID)

	// The entry expires with the configured TTL rather than living forever
	mr.FastForward(16 * time.Minute)
	got, err = cache.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOfferCacheMissIsNotAnError(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.GetOffer(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOfferCacheEvict(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	offer := &models.Offer{ID: uuid.New(), State: models.OfferStatePending}
	require.NoError(t, cache.SaveOffer(ctx, offer))
	require.NoError(t, cache.EvictOffer(ctx, offer.ID))

	got, err := cache.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOfferCacheGeoIndex(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	nearID := uuid.New()
	farID := uuid.New()
	require.NoError(t, cache.SaveOfferLocation(ctx, nearID, -6.26, 106.81))
	require.NoError(t, cache.SaveOfferLocation(ctx, farID, -7.79, 110.37))

	ids, err := cache.FindNearbyOfferIDs(ctx, -6.25, 106.80, 20)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, nearID, ids[0])

	require.NoError(t, cache.RemoveOfferLocation(ctx, nearID))
	ids, err = cache.FindNearbyOfferIDs(ctx, -6.25, 106.80, 20)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
