package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailgo/hailcore/internal/pkg/apperrors"
	"github.com/hailgo/hailcore/internal/pkg/constants"
	"github.com/hailgo/hailcore/internal/pkg/database"
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/services/location/repository"
)

func newTestUC(t *testing.T) (*LocationUC, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rd := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	cfg := &models.Config{
		Offer:      models.OfferConfig{SearchRadiusKm: 20},
		Trajectory: models.TrajectoryConfig{BufferTTL: time.Hour},
	}
	log := logger.NewAppLogger(models.AppConfig{Debug: true})
	locationRepo := repository.NewLocationRepo(cfg, rd, log)
	return NewLocationUC(cfg, locationRepo, nil, log), mr
}

func TestUpdateLocation(t *testing.T) {
	t.Run("updates the live index and buffers the sample", func(t *testing.T) {
		uc, mr := newTestUC(t)
		ctx := context.Background()
		driverID := uuid.New()

		err := uc.UpdateLocation(ctx, driverID, &models.Location{Latitude: -6.26, Longitude: 106.81})
		require.NoError(t, err)

		pos, err := uc.GetDriverPosition(ctx, driverID)
		require.NoError(t, err)
		require.NotNil(t, pos)
		assert.InDelta(t, -6.26, pos.Latitude, 0.001)

		buffered, err := mr.List(fmt.Sprintf(constants.KeyDriverHistory, driverID))
		require.NoError(t, err)
		assert.Len(t, buffered, 1)
	})

	t.Run("rejects implausible coordinates", func(t *testing.T) {
		uc, _ := newTestUC(t)

		err := uc.UpdateLocation(context.Background(), uuid.New(),
			&models.Location{Latitude: 127.0, Longitude: 106.81})
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("repeated samples accumulate in the buffer", func(t *testing.T) {
		uc, mr := newTestUC(t)
		ctx := context.Background()
		driverID := uuid.New()

		for i := 0; i < 3; i++ {
			require.NoError(t, uc.UpdateLocation(ctx, driverID, &models.Location{
				Latitude: -6.26 + float64(i)*0.001, Longitude: 106.81,
			}))
		}

		buffered, err := mr.List(fmt.Sprintf(constants.KeyDriverHistory, driverID))
		require.NoError(t, err)
		assert.Len(t, buffered, 3)
	})
}

func TestFindNearbyDriversDefaultsRadius(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()
	driverID := uuid.New()

	require.NoError(t, uc.UpdateLocation(ctx, driverID, &models.Location{Latitude: -6.26, Longitude: 106.81}))

	ids, err := uc.FindNearbyDrivers(ctx, -6.25, 106.80, 0)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, driverID, ids[0])
}

func TestRemoveDriverKeepsBufferedSamples(t *testing.T) {
	uc, mr := newTestUC(t)
	ctx := context.Background()
	driverID := uuid.New()

	require.NoError(t, uc.UpdateLocation(ctx, driverID, &models.Location{Latitude: -6.26, Longitude: 106.81}))
	require.NoError(t, uc.RemoveDriver(ctx, driverID))

	pos, err := uc.GetDriverPosition(ctx, driverID)
	require.NoError(t, err)
	assert.Nil(t, pos)

	// The raw buffer survives for the next drain cycle
	buffered, err := mr.List(fmt.Sprintf(constants.KeyDriverHistory, driverID))
	require.NoError(t, err)
	assert.Len(t, buffered, 1)
}
