package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/hailgo/hailcore/internal/pkg/apperrors"
	"github.com/hailgo/hailcore/internal/pkg/constants"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

const userCacheTTL = 10 * time.Minute

// FindUserByID resolves a user, serving hot accounts from Redis. Cache
// failures degrade to the durable store.
func (r *UserRepo) FindUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	key := fmt.Sprintf(constants.KeyUser, userID)
	if data, err := r.redis.Get(ctx, key); err == nil {
		var user models.User
		if err := json.Unmarshal([]byte(data), &user); err == nil {
			return &user, nil
		}
		_ = r.redis.Delete(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.log.WithError(err).Warn("user cache read failed")
	}

	var user models.User
	query := `SELECT id, first_name, last_name, email, phone, role, rating, created_at FROM users WHERE id = $1`
	if err := r.db.GetDB().GetContext(ctx, &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError{Entity: "user", ID: userID.String()}
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if data, err := json.Marshal(&user); err == nil {
		if err := r.redis.Set(ctx, key, data, userCacheTTL); err != nil {
			r.log.WithError(err).Warn("user cache write failed")
		}
	}
	return &user, nil
}

// FindUsersByRole returns every account holding the given role
func (r *UserRepo) FindUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	var users []*models.User
	query := `SELECT id, first_name, last_name, email, phone, role, rating, created_at FROM users WHERE role = $1`
	if err := r.db.GetDB().SelectContext(ctx, &users, query, role); err != nil {
		return nil, fmt.Errorf("failed to query users by role: %w", err)
	}
	return users, nil
}

// GetDriverProfile loads the vehicle and validation profile for a driver
func (r *UserRepo) GetDriverProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error) {
	var profile models.DriverProfile
	query := `SELECT user_id, vehicle_brand, vehicle_model, license_plate, is_online, is_validated
		FROM driver_profiles WHERE user_id = $1`
	if err := r.db.GetDB().GetContext(ctx, &profile, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError{Entity: "driver profile", ID: driverID.String()}
		}
		return nil, fmt.Errorf("failed to query driver profile: %w", err)
	}
	return &profile, nil
}

// FindDeviceToken returns the most recently registered push token for the
// user, or "" when none is registered.
func (r *UserRepo) FindDeviceToken(ctx context.Context, userID uuid.UUID) (string, error) {
	var token string
	query := `SELECT token FROM device_tokens WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	if err := r.db.GetDB().GetContext(ctx, &token, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to query device token: %w", err)
	}
	return token, nil
}

// GetNotificationSettings returns the user's channel preferences. Users
// without a stored row get every channel enabled.
func (r *UserRepo) GetNotificationSettings(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	query := `SELECT user_id, push_enabled, email_enabled FROM notification_settings WHERE user_id = $1`
	if err := r.db.GetDB().GetContext(ctx, &settings, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.NotificationSettings{UserID: userID, PushEnabled: true, EmailEnabled: true}, nil
		}
		return nil, fmt.Errorf("failed to query notification settings: %w", err)
	}
	return &settings, nil
}

// SaveNotification appends a row to the user's notification history
func (r *UserRepo) SaveNotification(ctx context.Context, n *models.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO notifications (id, user_id, title, message, type, is_read, data_json, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.GetDB().ExecContext(ctx, query,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.IsRead, n.DataJSON, n.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}
