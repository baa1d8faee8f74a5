package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tharwin-carr/smoothie-me-api2/internal/model"
)

// Migrate creates or updates the two tables. Order matters: the
// favorites foreign key needs the smoothies table to exist first.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Smoothie{},
		&model.Favorite{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
