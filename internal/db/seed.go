package db

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"vehicle-rental-backend/config"
	"vehicle-rental-backend/internal/auth"
	"vehicle-rental-backend/internal/model"
)

// SeedAdmin creates the initial admin user when the users table is empty so
// a fresh deployment can be logged into. Does nothing once any user exists.
func SeedAdmin(db *gorm.DB, cfg *config.AuthConfig) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		return fmt.Errorf("auth.admin_password must be set to seed the initial admin user")
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := model.User{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("seeded initial admin user %q", cfg.AdminUsername)
	return nil
}
