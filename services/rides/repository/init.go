// Package repository provides the PostgreSQL backed ride store
package repository

import (
	"github.com/hailgo/hailcore/internal/pkg/database"
)

// RideRepo is the durable ride store
type RideRepo struct {
	db *database.PostgresClient
}

// NewRideRepo creates the PostgreSQL ride repository
func NewRideRepo(db *database.PostgresClient) *RideRepo {
	return &RideRepo{db: db}
}
