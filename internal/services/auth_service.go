package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asegedech/volunteer-api/internal/models"
	"github.com/asegedech/volunteer-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles admin authentication.
type AuthService struct {
	adminRepo repository.AdminRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Identifier string
	Password   string
}

// Login verifies credentials and returns the authenticated admin. The
// identifier is matched case-insensitively; a bare identifier without "@" is
// tried both verbatim and with the "@example.com" suffix, so the two seeded
// accounts act as aliases of each other.
func (s *AuthService) Login(input LoginInput) (*models.Admin, error) {
	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))
	if identifier == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	var (
		admin *models.Admin
		err   error
	)
	if strings.Contains(identifier, "@") {
		admin, err = s.adminRepo.FindByEmail(identifier)
	} else {
		admin, err = s.adminRepo.FindByEmailIn([]string{identifier, identifier + "@example.com"})
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
