package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/asegedech/volunteer-api/internal/constants"
	"github.com/asegedech/volunteer-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmins ensures the two default admin accounts exist. Idempotent:
// accounts already present are left untouched, so a changed password
// survives restarts.
func SeedAdmins(db *gorm.DB) error {
	for _, email := range []string{constants.SeedAdminEmail, constants.SeedAdminAlias} {
		if err := ensureAdmin(db, email); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin(db *gorm.DB, email string) error {
	var existing models.Admin
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin %q: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(constants.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := models.Admin{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin %q: %w", email, err)
	}

	log.Printf("Seeded admin account %q", email)
	return nil
}
