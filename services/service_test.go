package services_test

import (
	"testing"

	"backend/config"
	"backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func fptr(v float64) *float64 { return &v }

func newTestUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	user := models.User{UserID: "test-" + email, Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}
