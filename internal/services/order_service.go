// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/database"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/utils"
)

var orderRelations = []string{"Items", "Items.Product"}

var orderSortFields = []string{"created_at", "total_amount", "status"}

type OrderService struct {
	db *gorm.DB
}

type OrderItemRequest struct {
	ProductID uint `json:"productID" validate:"required,gt=0"`
	Quantity  int  `json:"quantity" validate:"required,min=1,max=10000"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
	ShippingAddress string             `json:"shippingAddress" validate:"required,notblank,max=1000"`
	Notes           string             `json:"notes" validate:"max=2000"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// Actor is the authenticated caller an operation runs for.
type Actor struct {
	UserID  uint
	IsAdmin bool
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder reserves stock for every line and records the order in one
// transaction. Lines for the same product are merged first.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, req *CreateOrderRequest) (*models.Order, error) {
	orderNumber, err := utils.GenerateOrderNumber()
	if err != nil {
		return nil, apperr.Internal(i18n.KeyOrderCreateFailed, err)
	}

	order := &models.Order{
		OrderNumber:     orderNumber,
		UserID:          userID,
		Status:          models.OrderStatusPending,
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		Notes:           req.Notes,
	}

	err = database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		for _, line := range mergeOrderLines(req.Items) {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				return apperr.FromDB(err, i18n.KeyProductNotFound, i18n.KeyOrderCreateFailed)
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return apperr.Internal(i18n.KeyOrderCreateFailed, res.Error)
			}
			if res.RowsAffected == 0 {
				return apperr.Conflict(i18n.KeyProductOutOfStock, line.ProductID)
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: product.SellingPrice,
			})
		}

		order.TotalAmount = orderTotal(order.Items)
		if err := tx.Create(order).Error; err != nil {
			return apperr.FromDB(err, i18n.KeyOrderNotFound, i18n.KeyOrderCreateFailed)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.From(err, i18n.KeyOrderCreateFailed)
	}

	return s.load(ctx, s.db.WithContext(ctx), order.ID)
}

func mergeOrderLines(items []OrderItemRequest) []OrderItemRequest {
	merged := make([]OrderItemRequest, 0, len(items))
	index := make(map[uint]int, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

func orderTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return math.Round(total*100) / 100
}

// ListOrders pages through the caller's orders; admins see every order.
func (s *OrderService) ListOrders(ctx context.Context, actor Actor, params utils.PaginationParams) ([]models.Order, int64, error) {
	scoped := func() *gorm.DB {
		query := s.db.WithContext(ctx).Model(&models.Order{})
		if !actor.IsAdmin {
			query = query.Where("user_id = ?", actor.UserID)
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(i18n.KeyOrderFetchFailed, err)
	}

	orders := make([]models.Order, 0)
	query := utils.ApplyPagination(utils.ApplySort(scoped(), params, orderSortFields), params)
	for _, preload := range orderRelations {
		query = query.Preload(preload)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, apperr.Internal(i18n.KeyOrderFetchFailed, err)
	}

	return orders, total, nil
}

// GetOrder returns the order when actor may see it. Other customers' orders
// are reported as missing.
func (s *OrderService) GetOrder(ctx context.Context, actor Actor, id uint) (*models.Order, error) {
	order, err := s.load(ctx, s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && order.UserID != actor.UserID {
		return nil, apperr.NotFound(i18n.KeyOrderNotFound)
	}
	return order, nil
}

// UpdateStatus moves an order along its lifecycle. Cancelling puts the
// reserved stock back.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, req *UpdateOrderStatusRequest) (*models.Order, error) {
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		order, err := s.load(ctx, tx, id)
		if err != nil {
			return err
		}
		return transition(tx, order, req.Status)
	})
	if err != nil {
		return nil, apperr.From(err, i18n.KeyOrderUpdateFailed)
	}

	return s.load(ctx, s.db.WithContext(ctx), id)
}

// CancelOrder lets the owner withdraw an order that has not been processed
// yet.
func (s *OrderService) CancelOrder(ctx context.Context, actor Actor, id uint) (*models.Order, error) {
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		order, err := s.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if order.UserID != actor.UserID {
			return apperr.NotFound(i18n.KeyOrderNotFound)
		}
		if order.Status != models.OrderStatusPending {
			return apperr.Conflict(i18n.KeyOrderNotCancellable)
		}
		return transition(tx, order, models.OrderStatusCancelled)
	})
	if err != nil {
		return nil, apperr.From(err, i18n.KeyOrderUpdateFailed)
	}

	return s.load(ctx, s.db.WithContext(ctx), id)
}

func transition(tx *gorm.DB, order *models.Order, next models.OrderStatus) error {
	if !order.Status.CanTransitionTo(next) {
		return apperr.Conflict(i18n.KeyOrderInvalidTransition, order.Status, next)
	}

	if next == models.OrderStatusCancelled {
		for _, item := range order.Items {
			err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error
			if err != nil {
				return apperr.Internal(i18n.KeyOrderUpdateFailed, err)
			}
		}
	}

	if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", next).Error; err != nil {
		return apperr.Internal(i18n.KeyOrderUpdateFailed, err)
	}
	return nil
}

func (s *OrderService) load(ctx context.Context, db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	query := db.WithContext(ctx)
	for _, preload := range orderRelations {
		query = query.Preload(preload)
	}
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(i18n.KeyOrderNotFound)
		}
		return nil, apperr.Internal(i18n.KeyOrderFetchFailed, err)
	}
	return &order, nil
}
