package repository

import (
	"github.com/asegedech/volunteer-api/internal/models"
	"gorm.io/gorm"
)

// GormAdminRepository is a GORM implementation of AdminRepository
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &GormAdminRepository{db: db}
}

// FindByID finds an admin by ID
func (r *GormAdminRepository) FindByID(id uint64) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByEmail finds an admin by exact email
func (r *GormAdminRepository) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByEmailIn finds the first admin matching any candidate email
func (r *GormAdminRepository) FindByEmailIn(emails []string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email IN ?", emails).Order("id").First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
