package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local only) and the
// process environment into an explicit Config struct. Components receive
// the struct at construction time; there are no ambient lookups.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "hailcore")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "hailcore")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "localhost:4150")
	configs.NSQ.Enabled = GetEnvAsBool("NSQ_ENABLED", false)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "hailcore")

	// Offer config
	configs.Offer.CacheTTL = GetEnvAsDuration("OFFER_CACHE_TTL", 15*time.Minute)
	configs.Offer.SearchRadiusKm = GetEnvAsFloat("OFFER_SEARCH_RADIUS_KM", 20.0)

	// Trajectory config
	configs.Trajectory.DrainInterval = GetEnvAsDuration("TRAJECTORY_DRAIN_INTERVAL", 10*time.Minute)
	configs.Trajectory.BufferTTL = GetEnvAsDuration("LOCATION_BUFFER_TTL", time.Hour)

	// Payment config
	configs.Payment.ServiceURL = GetEnv("PAYMENT_SERVICE_URL", "")
	configs.Payment.CommissionRate = GetEnvAsFloat("PAYMENT_COMMISSION_RATE", 0.10)
	configs.Payment.EnforceBalance = GetEnvAsBool("PAYMENT_ENFORCE_BALANCE", false)

	// Notification config
	configs.Notification.ServiceURL = GetEnv("NOTIFICATION_SERVICE_URL", "")
	configs.Notification.Templates.NewOffer = GetEnvAsInt("TMPL_NEW_OFFER", 1)
	configs.Notification.Templates.DriverApplied = GetEnvAsInt("TMPL_DRIVER_APPLIED", 2)
	configs.Notification.Templates.DriverSelected = GetEnvAsInt("TMPL_DRIVER_SELECTED", 3)
	configs.Notification.Templates.RideConfirmed = GetEnvAsInt("TMPL_RIDE_CONFIRMED", 4)
	configs.Notification.Templates.RideCancelled = GetEnvAsInt("TMPL_RIDE_CANCELLED", 5)

	return configs
}

// GetEnv retrieves an environment variable with a fallback default
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer
func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as a boolean
func GetEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetEnvAsFloat retrieves an environment variable as a float64
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration retrieves an environment variable as a time.Duration
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
