package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/graymont-pd/casefilebackend/models"
)

// InitGormDB initializes and returns a GORM database instance. The driver
// is selected by name: "sqlite" (default) or "mysql", matching the station
// deployments this system runs against.
func InitGormDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if driver != "mysql" {
		// sqlite leaves referential integrity off unless asked; the
		// detentions.suspect_id constraint depends on it
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			log.Printf("warning: failed to enable foreign keys: %v", err)
		}
	}

	return db, nil
}

// AutoMigrateModels migrates the four record tables.
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.Suspect{},
		&models.Detention{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	return nil
}

// SeedBootstrapAdmin inserts the default administrator when no accounts
// exist yet, so a fresh install is reachable and anonymous writes have an
// identity to fall back to.
func SeedBootstrapAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	admin := models.User{
		Username:     "admin",
		PasswordHash: models.DemoPasswordSentinel,
		Role:         models.RoleAdmin,
		FullName:     "System Administrator",
		Station:      "Headquarters",
	}
	return db.Create(&admin).Error
}
