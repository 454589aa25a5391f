package db

import (
	"errors"
	"fmt"
	"log"

	"iori_nav/internal/auth"
	"iori_nav/internal/model"

	"gorm.io/gorm"
)

// Migrate runs database migrations for all models
func Migrate(db *gorm.DB) error {
	log.Println("Starting database migration...")

	models := []interface{}{
		&model.User{},
		&model.Category{},
		&model.Site{},
		&model.PendingSite{},
		&model.Setting{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("✓ Database migration completed successfully (%d tables)", len(models))
	return nil
}

// SeedAdmin creates the initial admin user when none with the given
// username exists. No-op when username or password is empty.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var existing model.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         "admin",
		Status:       model.UserStatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("✓ Seeded admin user %q", username)
	return nil
}
