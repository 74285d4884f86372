// Package repository provides the Redis fast store for live positions and
// raw GPS buffers, and the PostgreSQL store for compacted trajectories.
package repository

import (
	"github.com/hailgo/hailcore/internal/pkg/database"
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

// LocationRepo is the Redis backed location store
type LocationRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
	log   *logger.AppLogger
}

// NewLocationRepo creates the Redis location repository
func NewLocationRepo(cfg *models.Config, redis *database.RedisClient, log *logger.AppLogger) *LocationRepo {
	return &LocationRepo{cfg: cfg, redis: redis, log: log}
}

// TrajectoryRepo is the durable trajectory store
type TrajectoryRepo struct {
	db *database.PostgresClient
}

// NewTrajectoryRepo creates the PostgreSQL trajectory repository
func NewTrajectoryRepo(db *database.PostgresClient) *TrajectoryRepo {
	return &TrajectoryRepo{db: db}
}
