// internal/middleware/auth.go
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/utils"
)

// UserVerifier confirms that the account behind a valid token may still act,
// e.g. that it has not been suspended since the token was issued.
type UserVerifier interface {
	VerifyActive(ctx context.Context, userID uint) error
}

func AuthRequired(jwt *utils.JWTManager, users UserVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperr.Unauthorized(i18n.KeyAuthRequired))
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortWithError(c, apperr.Unauthorized(i18n.KeyAuthInvalidToken))
			return
		}

		claims, err := jwt.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			abortWithError(c, &apperr.Error{Kind: apperr.KindUnauthorized, Key: i18n.KeyAuthInvalidToken, Err: err})
			return
		}

		if users != nil {
			if err := users.VerifyActive(c.Request.Context(), claims.UserID); err != nil {
				abortWithError(c, err)
				return
			}
		}

		// Set user info in context
		c.Set(utils.ContextKeyUserID, claims.UserID)
		c.Set(utils.ContextKeyUserRole, claims.Role)
		c.Next()
	}
}

// AdminRequired must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := utils.GetUserRoleFromContext(c)
		if !exists || role != string(models.UserRoleAdmin) {
			abortWithError(c, apperr.Forbidden(i18n.KeyAdminAccessDenied))
			return
		}
		c.Next()
	}
}
