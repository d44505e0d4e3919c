// internal/handlers/params.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/services"
	"github.com/javajoker/retail-backend/internal/utils"
)

// parseID reads the :id path parameter. A value that is not an integer is
// answered with 400. Zero and negative ids match no row, so they go to the
// store as 0 and come back as 404.
func parseID(c *gin.Context, invalidKey string, args ...interface{}) (uint, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, apperr.Validation(invalidKey, args...), invalidKey)
		return 0, false
	}
	if id < 0 {
		id = 0
	}
	return uint(id), true
}

// currentActor reads the authenticated caller set by middleware.AuthRequired.
func currentActor(c *gin.Context) (services.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.RespondError(c, apperr.Unauthorized(i18n.KeyAuthRequired), i18n.KeyAuthRequired)
		return services.Actor{}, false
	}

	role, _ := utils.GetUserRoleFromContext(c)
	return services.Actor{
		UserID:  userID,
		IsAdmin: role == string(models.UserRoleAdmin),
	}, true
}
