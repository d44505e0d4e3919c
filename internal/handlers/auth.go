// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/services"
	"github.com/javajoker/retail-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondError(c, err, i18n.KeyAuthRegisterFailed)
		return
	}

	authResponse, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyAuthRegisterFailed)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyAuthRegisterSuccess), authResponse)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondError(c, err, i18n.KeyAuthLoginFailed)
		return
	}

	authResponse, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyAuthLoginFailed)
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyAuthLoginSuccess), authResponse)
}

// GET /api/auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyInternalError)
		return
	}

	utils.SuccessResponse(c, user)
}
