package repositories

import (
	"testing"

	"github.com/jcallahan/flock-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// The in-memory database lives per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Follow{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, userName, email string) *models.User {
	t.Helper()

	user := &models.User{
		UserName:       userName,
		Email:          email,
		HashedPassword: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
