package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/Seokzzoo/bonoclicker/internal/models"
	"github.com/Seokzzoo/bonoclicker/internal/services"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	testTeams = []string{"A", "B", "C", "D"}
	kst       = time.FixedZone("UTC+09:00", 9*3600)
)

// newTestDB opens a fresh in-memory database per test. A single connection
// keeps sqlite writes serialized the same way row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Play{},
		&models.TeamDaily{},
		&models.UserDaily{},
	))
	return db
}

func newAuthService(db *gorm.DB) *services.AuthService {
	return services.NewAuthService(db, "test-secret", testTeams, 5*time.Minute)
}

func newAuthServiceWithSecret(db *gorm.DB, secret string) *services.AuthService {
	return services.NewAuthService(db, secret, testTeams, 5*time.Minute)
}

func newAuthServiceWithTTL(db *gorm.DB, ttl time.Duration) *services.AuthService {
	return services.NewAuthService(db, "test-secret", testTeams, ttl)
}

func newGameService(db *gorm.DB, auth *services.AuthService) *services.GameService {
	return services.NewGameService(db, auth, kst, 10, 20)
}

func createUser(t *testing.T, auth *services.AuthService, nickname, clientUUID string) *models.User {
	t.Helper()

	user, _, err := auth.Identify(nickname, clientUUID)
	require.NoError(t, err)
	return user
}
