package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/constants"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

// SaveLiveLocation upserts the driver's position in the live geo index
func (r *LocationRepo) SaveLiveLocation(ctx context.Context, driverID uuid.UUID, lat, lon float64) error {
	return r.redis.GeoAdd(ctx, constants.KeyDriverGeoLive, lon, lat, driverID.String())
}

// GetLiveLocation returns the driver's indexed position, or (nil, nil)
// when the driver is not in the index.
func (r *LocationRepo) GetLiveLocation(ctx context.Context, driverID uuid.UUID) (*models.Location, error) {
	return r.redis.GeoPos(ctx, constants.KeyDriverGeoLive, driverID.String())
}

// FindNearbyDrivers returns drivers within radiusKm, closest first
func (r *LocationRepo) FindNearbyDrivers(ctx context.Context, lat, lon, radiusKm float64) ([]uuid.UUID, error) {
	locations, err := r.redis.GeoSearch(ctx, constants.KeyDriverGeoLive, lon, lat, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to search driver index: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			r.log.WithField("member", loc.Name).Warn("skipping malformed driver index member")
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RemoveLiveLocation drops the driver from the live index
func (r *LocationRepo) RemoveLiveLocation(ctx context.Context, driverID uuid.UUID) error {
	return r.redis.GeoRemove(ctx, constants.KeyDriverGeoLive, driverID.String())
}

// AppendSample pushes one raw sample onto the driver's buffer. The TTL is
// a safety net only: the drain cycle is expected to empty the buffer long
// before it fires.
func (r *LocationRepo) AppendSample(ctx context.Context, driverID uuid.UUID, sample *models.Location) error {
	key := fmt.Sprintf(constants.KeyDriverHistory, driverID)
	encoded := encodeSample(sample)
	if err := r.redis.RPush(ctx, key, encoded); err != nil {
		return fmt.Errorf("failed to buffer location sample: %w", err)
	}
	if err := r.redis.Expire(ctx, key, r.cfg.Trajectory.BufferTTL); err != nil {
		r.log.WithError(err).Warn("failed to refresh buffer ttl")
	}
	return nil
}

// ListBufferedDrivers scans for drivers with pending raw samples
func (r *LocationRepo) ListBufferedDrivers(ctx context.Context) ([]uuid.UUID, error) {
	keys, err := r.redis.ScanKeys(ctx, constants.PatternHistoryScan)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(keys))
	for _, key := range keys {
		raw := strings.TrimPrefix(key, constants.PrefixDriverHistory)
		id, err := uuid.Parse(raw)
		if err != nil {
			r.log.WithField("key", key).Warn("skipping malformed buffer key")
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DrainBuffer reads the full buffer and deletes it before returning. A
// failure after the delete loses the batch; live positions are unaffected.
func (r *LocationRepo) DrainBuffer(ctx context.Context, driverID uuid.UUID) ([]models.TrajectoryPoint, error) {
	key := fmt.Sprintf(constants.KeyDriverHistory, driverID)

	raw, err := r.redis.LRange(ctx, key, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample buffer: %w", err)
	}
	if err := r.redis.Delete(ctx, key); err != nil {
		return nil, fmt.Errorf("failed to clear sample buffer: %w", err)
	}

	points := make([]models.TrajectoryPoint, 0, len(raw))
	for _, entry := range raw {
		point, err := decodeSample(entry)
		if err != nil {
			r.log.WithField("sample", entry).Warn("skipping malformed location sample")
			continue
		}
		points = append(points, point)
	}
	return points, nil
}

func encodeSample(sample *models.Location) string {
	ts := sample.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return strings.Join([]string{
		strconv.FormatFloat(sample.Latitude, 'f', -1, 64),
		strconv.FormatFloat(sample.Longitude, 'f', -1, 64),
		strconv.FormatInt(ts.Unix(), 10),
	}, constants.SampleFieldSeparator)
}

func decodeSample(entry string) (models.TrajectoryPoint, error) {
	parts := strings.Split(entry, constants.SampleFieldSeparator)
	if len(parts) != 3 {
		return models.TrajectoryPoint{}, fmt.Errorf("expected 3 fields, got %d", len(parts))
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return models.TrajectoryPoint{}, err
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return models.TrajectoryPoint{}, err
	}
	ts, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return models.TrajectoryPoint{}, err
	}
	return models.TrajectoryPoint{Latitude: lat, Longitude: lon, Timestamp: ts}, nil
}
