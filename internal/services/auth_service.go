// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	jwt *utils.JWTManager
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int          `json:"expiresIn"` // in seconds
}

func NewAuthService(db *gorm.DB, jwt *utils.JWTManager) *AuthService {
	return &AuthService{
		db:  db,
		jwt: jwt,
	}
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)

	// Check if user already exists
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperr.Internal(i18n.KeyAuthRegisterFailed, err)
	}
	if count > 0 {
		return nil, apperr.Conflict(i18n.KeyAuthUserExists)
	}

	user := &models.User{
		Name:   strings.TrimSpace(req.Name),
		Email:  email,
		Role:   models.UserRoleCustomer,
		Status: models.UserStatusActive,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperr.Internal(i18n.KeyAuthRegisterFailed, err)
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(i18n.KeyAuthUserExists)
		}
		return nil, apperr.Internal(i18n.KeyAuthRegisterFailed, err)
	}

	return s.issue(user, i18n.KeyAuthRegisterFailed)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(req.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthorized(i18n.KeyAuthInvalidCredentials)
	}
	if err != nil {
		return nil, apperr.Internal(i18n.KeyAuthLoginFailed, err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, apperr.Unauthorized(i18n.KeyAuthInvalidCredentials)
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperr.Forbidden(i18n.KeyAuthSuspended)
	}

	// Update last login time
	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&user).UpdateColumn("last_login_at", now).Error; err != nil {
		return nil, apperr.Internal(i18n.KeyAuthLoginFailed, err)
	}
	user.LastLoginAt = &now

	return s.issue(&user, i18n.KeyAuthLoginFailed)
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, apperr.FromDB(err, i18n.KeyAuthUserNotFound, i18n.KeyInternalError)
	}
	return &user, nil
}

// VerifyActive rejects tokens of deleted or suspended accounts.
func (s *AuthService) VerifyActive(ctx context.Context, userID uint) error {
	var user models.User
	err := s.db.WithContext(ctx).Select("id", "status").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Unauthorized(i18n.KeyAuthInvalidToken)
	}
	if err != nil {
		return apperr.Internal(i18n.KeyInternalError, err)
	}
	if user.Status == models.UserStatusSuspended {
		return apperr.Forbidden(i18n.KeyAuthSuspended)
	}
	return nil
}

func (s *AuthService) issue(user *models.User, failKey string) (*AuthResponse, error) {
	token, err := s.jwt.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperr.Internal(failKey, err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwt.TTL().Seconds()),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
