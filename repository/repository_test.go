package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/graymont-pd/casefilebackend/models"
)

// newTestDB opens an in-memory SQLite database and migrates the four record
// tables. The pool is pinned to one connection so every query sees the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.Suspect{},
		&models.Detention{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, fullName, role, station string) models.User {
	t.Helper()
	u := models.User{
		Username:     username,
		PasswordHash: models.DemoPasswordSentinel,
		Role:         role,
		FullName:     fullName,
		Station:      station,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}
