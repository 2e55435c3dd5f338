package services

import (
	"fmt"
	"testing"

	"sweatfix/config"
	"sweatfix/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh in-memory database. The named DSN
// keeps the shared cache alive while gorm's pool holds connections.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ProgressEntry{}, &models.DailyPlan{}))

	config.DB = db
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
		config.DB = nil
	})
}

func createTestUser(t *testing.T, googleID string) *models.User {
	t.Helper()

	user := &models.User{GoogleID: googleID, Name: "Test User", Email: googleID + "@example.com"}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func strptr(s string) *string { return &s }
