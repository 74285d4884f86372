package models

import "time"

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NSQ          NSQConfig
	JWT          JWTConfig
	Offer        OfferConfig
	Trajectory   TrajectoryConfig
	Payment      PaymentConfig
	Notification NotificationConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// OfferConfig contains offer lifecycle configuration
type OfferConfig struct {
	CacheTTL       time.Duration // staleness bound for cached offers
	SearchRadiusKm float64       // radius for nearby offer/driver lookups
}

// TrajectoryConfig contains trajectory aggregation configuration
type TrajectoryConfig struct {
	DrainInterval time.Duration // how often the drain cycle runs
	BufferTTL     time.Duration // safety TTL on raw sample buffers
}

// PaymentConfig contains payment collaborator configuration
type PaymentConfig struct {
	ServiceURL     string
	CommissionRate float64
	EnforceBalance bool // reject bids from drivers who cannot cover the commission
}

// NotificationConfig contains notification dispatch configuration
type NotificationConfig struct {
	ServiceURL string
	Templates  NotificationTemplates
}

// NotificationTemplates maps lifecycle events to dispatcher template ids
type NotificationTemplates struct {
	NewOffer       int
	DriverApplied  int
	DriverSelected int
	RideConfirmed  int
	RideCancelled  int
}
