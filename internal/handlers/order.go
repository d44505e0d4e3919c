// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/services"
	"github.com/javajoker/retail-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req services.CreateOrderRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondError(c, err, i18n.KeyOrderCreateFailed)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), actor.UserID, &req)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyOrderCreateFailed)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyOrderCreated), order)
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	orders, total, err := h.orderService.ListOrders(c.Request.Context(), actor, params)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyOrderFetchFailed)
		return
	}

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result, len(orders))
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := parseID(c, i18n.KeyInvalidID, "order")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), actor, id)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyOrderFetchFailed)
		return
	}

	utils.SuccessResponse(c, order)
}

// PATCH /api/orders/:id/status (admin)
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseID(c, i18n.KeyInvalidID, "order")
	if !ok {
		return
	}

	var req services.UpdateOrderStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondError(c, err, i18n.KeyOrderUpdateFailed)
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyOrderUpdateFailed)
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyOrderUpdated), order)
}

// POST /api/orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := parseID(c, i18n.KeyInvalidID, "order")
	if !ok {
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), actor, id)
	if err != nil {
		utils.RespondError(c, err, i18n.KeyOrderUpdateFailed)
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyOrderCancelled), order)
}
