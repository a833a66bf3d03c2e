package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. Row models are private, so callers migrate through here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&locationRow{},
		&trainerRow{},
		&sessionRow{},
		&userRow{},
	)
}
