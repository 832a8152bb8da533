package database

import (
	"fmt"

	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/config"
	"github.com/Dajucoder/URL-MANAGE-SYSTEM-WEB/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.Database.DSNValue(),
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return db, nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.UserProfileModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.WebsiteModel{},
		&models.WebsiteNoteModel{},
		&models.CollectionModel{},
		&models.BookmarkModel{},
		&models.UserActivityModel{},
		&models.SearchLogModel{},
	)
}
