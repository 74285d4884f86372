// Package repository provides the PostgreSQL and Redis backed stores for
// the offers service. PostgreSQL is the source of truth; Redis holds the
// expiring read view and the geo discovery index.
package repository

import (
	"github.com/hailgo/hailcore/internal/pkg/database"
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

// OfferRepo is the durable offer store
type OfferRepo struct {
	db *database.PostgresClient
}

// NewOfferRepo creates the PostgreSQL offer repository
func NewOfferRepo(db *database.PostgresClient) *OfferRepo {
	return &OfferRepo{db: db}
}

// OfferCache is the expiring offer view plus geo index
type OfferCache struct {
	cfg   *models.Config
	redis *database.RedisClient
	log   *logger.AppLogger
}

// NewOfferCache creates the Redis offer cache
func NewOfferCache(cfg *models.Config, redis *database.RedisClient, log *logger.AppLogger) *OfferCache {
	return &OfferCache{cfg: cfg, redis: redis, log: log}
}

// UserRepo resolves accounts and driver profiles, caching hot user rows
type UserRepo struct {
	db    *database.PostgresClient
	redis *database.RedisClient
	log   *logger.AppLogger
}

// NewUserRepo creates the user repository
func NewUserRepo(db *database.PostgresClient, redis *database.RedisClient, log *logger.AppLogger) *UserRepo {
	return &UserRepo{db: db, redis: redis, log: log}
}
