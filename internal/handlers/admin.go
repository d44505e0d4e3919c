// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/services"
	"github.com/javajoker/retail-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GET /api/admin/dashboard/stats
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, i18n.KeyAdminStatsFailed)
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /api/admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	// Build filter parameters
	filter := services.AdminUserFilter{
		PaginationParams: params,
		Search:           c.Query("search"),
	}

	if role := c.Query("role"); role != "" {
		userRole := models.UserRole(role)
		filter.Role = &userRole
	}

	if status := c.Query("status"); status != "" {
		userStatus := models.UserStatus(status)
		filter.Status = &userStatus
	}

	users, total, err := h.adminService.GetUsers(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyAdminUsersFailed)
		return
	}

	result := utils.CreatePaginationResult(users, total, params)
	utils.PaginatedResponse(c, result, len(users))
}

// PATCH /api/admin/users/:id/status
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := parseID(c, i18n.KeyInvalidID, "user")
	if !ok {
		return
	}

	var req services.UpdateUserStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondError(c, err, i18n.KeyAdminUsersFailed)
		return
	}

	user, err := h.adminService.UpdateUserStatus(c.Request.Context(), userID, &req)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyAdminUsersFailed)
		return
	}

	message := i18n.T(lang, i18n.KeyAdminUserUnsuspended)
	if user.Status == models.UserStatusSuspended {
		message = i18n.T(lang, i18n.KeyAdminUserSuspended)
	}

	utils.MessageResponse(c, message, user)
}
