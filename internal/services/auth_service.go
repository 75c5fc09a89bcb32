package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/garagesale/backend/internal/config"
	"github.com/garagesale/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSuperAdminExists   = errors.New("super admin already exists")
	ErrUsernameTaken      = errors.New("username already taken")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Login verifies the credentials and mints a signed token carrying the
// user's id, username and role. bcrypt's comparison is constant time, and
// an unknown username takes the same error path as a bad password.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(&user)
}

// CreateSuperAdmin is the one-time bootstrap. It refuses as soon as any
// super admin exists.
func (s *AuthService) CreateSuperAdmin(username, password string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing super admin: %w", err)
	}
	if count > 0 {
		return ErrSuperAdminExists
	}
	return s.createUser(username, password, models.RoleSuperAdmin)
}

// CreateAdmin creates an admin account. The super-admin-only gate is
// enforced by the route middleware.
func (s *AuthService) CreateAdmin(username, password string) error {
	return s.createUser(username, password, models.RoleAdmin)
}

func (s *AuthService) createUser(username, password, role string) error {
	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
