package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailgo/hailcore/internal/pkg/database"
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

func newTestUserRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	pg := database.NewPostgresClientFromDB(sqlx.NewDb(db, "sqlmock"))
	rd := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	log := logger.NewAppLogger(models.AppConfig{Debug: true})
	return NewUserRepo(pg, rd, log), mock
}

var userRows = []string{"id", "first_name", "last_name", "email", "phone", "role", "rating", "created_at"}

func TestUserRepoFindUserByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userRows).AddRow(
			userID.String(), "Budi", "Santoso", "budi@example.com", "+628111111111",
			"DRIVER", 4.8, time.Now().UTC(),
		))

	user, err := repo.FindUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", user.FullName())
	assert.Equal(t, models.RoleDriver, user.Role)

	// Second read is served from the cache; no further SQL expectation is set
	cached, err := repo.FindUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, cached.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoFindUserByIDNotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userRows))

	_, err := repo.FindUserByID(context.Background(), userID)
	assert.Error(t, err)
}

func TestUserRepoDeviceToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM device_tokens")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"token"}))

	token, err := repo.FindDeviceToken(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestUserRepoNotificationSettingsDefault(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM notification_settings")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "push_enabled", "email_enabled"}))

	settings, err := repo.GetNotificationSettings(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, settings.PushEnabled)
	assert.True(t, settings.EmailEnabled)
}
