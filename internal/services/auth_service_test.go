package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/services"
	"github.com/javajoker/retail-backend/internal/utils"
)

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	jwtManager := utils.NewJWTManager("test-secret", 1)
	authService := services.NewAuthService(db, jwtManager)

	registered, err := authService.Register(ctx, &services.RegisterRequest{
		Name:     "  Ada Lovelace ",
		Email:    " Ada@Example.com ",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("register", func(t *testing.T) {
		assert.Equal(t, "Ada Lovelace", registered.User.Name)
		assert.Equal(t, "ada@example.com", registered.User.Email)
		assert.Equal(t, models.UserRoleCustomer, registered.User.Role)
		assert.Equal(t, "Bearer", registered.TokenType)
		assert.Equal(t, 3600, registered.ExpiresIn)

		claims, err := jwtManager.Validate(registered.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, claims.UserID)
		assert.Equal(t, "customer", claims.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := authService.Register(ctx, &services.RegisterRequest{
			Name:     "Someone Else",
			Email:    "ADA@example.com",
			Password: "another123",
		})
		requireKind(t, err, apperr.KindConflict, i18n.KeyAuthUserExists)
	})

	t.Run("login", func(t *testing.T) {
		resp, err := authService.Login(ctx, &services.LoginRequest{Email: "ada@EXAMPLE.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, resp.User.ID)
		assert.NotNil(t, resp.User.LastLoginAt)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authService.Login(ctx, &services.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})
		requireKind(t, err, apperr.KindUnauthorized, i18n.KeyAuthInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authService.Login(ctx, &services.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
		requireKind(t, err, apperr.KindUnauthorized, i18n.KeyAuthInvalidCredentials)
	})

	t.Run("profile", func(t *testing.T) {
		user, err := authService.GetUserByID(ctx, registered.User.ID)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)

		_, err = authService.GetUserByID(ctx, 999)
		requireKind(t, err, apperr.KindNotFound, i18n.KeyAuthUserNotFound)
	})

	t.Run("suspended account", func(t *testing.T) {
		require.NoError(t, authService.VerifyActive(ctx, registered.User.ID))

		require.NoError(t, db.Model(&models.User{}).Where("id = ?", registered.User.ID).
			Update("status", models.UserStatusSuspended).Error)

		_, err := authService.Login(ctx, &services.LoginRequest{Email: "ada@example.com", Password: "secret123"})
		requireKind(t, err, apperr.KindForbidden, i18n.KeyAuthSuspended)

		err = authService.VerifyActive(ctx, registered.User.ID)
		requireKind(t, err, apperr.KindForbidden, i18n.KeyAuthSuspended)
	})

	t.Run("deleted account", func(t *testing.T) {
		err := authService.VerifyActive(ctx, 999)
		requireKind(t, err, apperr.KindUnauthorized, i18n.KeyAuthInvalidToken)
	})
}
