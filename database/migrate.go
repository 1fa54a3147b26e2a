package database

import (
	"gorm.io/gorm"

	"edurec_backend/internal/models"
)

// Migrate applies the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.StudentProfile{},
		&models.Institution{},
		&models.Course{},
		&models.InteractionEvent{},
	)
}
