// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/services"
	"github.com/javajoker/retail-backend/internal/utils"
)

// CatalogHandler serves the JSON CRUD routes of one catalog entity. R is the
// request body type bound on create and update.
type CatalogHandler[T any, R services.CatalogRequest[T]] struct {
	service *services.CatalogService[T]
}

func NewCatalogHandler[T any, R services.CatalogRequest[T]](service *services.CatalogService[T]) *CatalogHandler[T, R] {
	return &CatalogHandler[T, R]{service: service}
}

// Register mounts list/get/create/update/delete on group.
func (h *CatalogHandler[T, R]) Register(group *gin.RouterGroup, write ...gin.HandlerFunc) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	protected := group.Group("", write...)
	protected.POST("", h.Create)
	protected.PUT("/:id", h.Update)
	protected.PATCH("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}

func (h *CatalogHandler[T, R]) List(c *gin.Context) {
	entities, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, i18n.KeyCatalogFetchFailed)
		return
	}

	utils.ListResponse(c, entities, len(entities))
}

func (h *CatalogHandler[T, R]) Get(c *gin.Context) {
	id, ok := parseID(c, i18n.KeyInvalidID, h.service.Resource())
	if !ok {
		return
	}

	entity, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyCatalogFetchFailed)
		return
	}

	utils.SuccessResponse(c, entity)
}

func (h *CatalogHandler[T, R]) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req R
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondError(c, err, i18n.KeyCatalogCreateFailed)
		return
	}

	entity, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyCatalogCreateFailed)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyCatalogCreated, h.service.Resource()), entity)
}

func (h *CatalogHandler[T, R]) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseID(c, i18n.KeyInvalidID, h.service.Resource())
	if !ok {
		return
	}

	var req R
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondError(c, err, i18n.KeyCatalogUpdateFailed)
		return
	}

	entity, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyCatalogUpdateFailed)
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyCatalogUpdated, h.service.Resource()), entity)
}

func (h *CatalogHandler[T, R]) Delete(c *gin.Context) {
	id, ok := parseID(c, i18n.KeyInvalidID, h.service.Resource())
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err, i18n.KeyCatalogDeleteFailed)
		return
	}

	utils.NoContentResponse(c)
}
