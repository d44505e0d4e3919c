package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/services"
	"github.com/javajoker/retail-backend/internal/utils"
)

type orderFixture struct {
	db       *gorm.DB
	service  *services.OrderService
	customer services.Actor
	other    services.Actor
	admin    services.Actor
	shirt    *models.Product
	socks    *models.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	db := openTestDB(t)
	return &orderFixture{
		db:       db,
		service:  services.NewOrderService(db),
		customer: services.Actor{UserID: seedUser(t, db, "customer@example.com", models.UserRoleCustomer).ID},
		other:    services.Actor{UserID: seedUser(t, db, "other@example.com", models.UserRoleCustomer).ID},
		admin:    services.Actor{UserID: seedUser(t, db, "admin@example.com", models.UserRoleAdmin).ID, IsAdmin: true},
		shirt:    seedProduct(t, db, "Shirt", 10.50, 5),
		socks:    seedProduct(t, db, "Socks", 2.25, 1),
	}
}

func (f *orderFixture) stock(t *testing.T, product *models.Product) int {
	t.Helper()

	var current models.Product
	require.NoError(t, f.db.First(&current, product.ID).Error)
	return current.Stock
}

func (f *orderFixture) place(t *testing.T, actor services.Actor, items ...services.OrderItemRequest) *models.Order {
	t.Helper()

	order, err := f.service.CreateOrder(context.Background(), actor.UserID, &services.CreateOrderRequest{
		Items:           items,
		ShippingAddress: "1 Main Street",
	})
	require.NoError(t, err)
	return order
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves stock and prices lines", func(t *testing.T) {
		f := newOrderFixture(t)

		order := f.place(t, f.customer,
			services.OrderItemRequest{ProductID: f.shirt.ID, Quantity: 2},
			services.OrderItemRequest{ProductID: f.socks.ID, Quantity: 1},
			services.OrderItemRequest{ProductID: f.shirt.ID, Quantity: 1},
		)

		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, f.customer.UserID, order.UserID)
		assert.Regexp(t, `^ORD-`, order.OrderNumber)
		assert.InDelta(t, 33.75, order.TotalAmount, 0.001)
		require.Len(t, order.Items, 2)
		assert.Equal(t, 3, order.Items[0].Quantity)
		assert.Equal(t, 10.50, order.Items[0].UnitPrice)
		require.NotNil(t, order.Items[0].Product)
		assert.Equal(t, "Shirt", order.Items[0].Product.ProductName)

		assert.Equal(t, 2, f.stock(t, f.shirt))
		assert.Equal(t, 0, f.stock(t, f.socks))
	})

	t.Run("insufficient stock rolls back every line", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.service.CreateOrder(ctx, f.customer.UserID, &services.CreateOrderRequest{
			Items: []services.OrderItemRequest{
				{ProductID: f.shirt.ID, Quantity: 2},
				{ProductID: f.socks.ID, Quantity: 2},
			},
			ShippingAddress: "1 Main Street",
		})
		requireKind(t, err, apperr.KindConflict, i18n.KeyProductOutOfStock)

		assert.Equal(t, 5, f.stock(t, f.shirt))
		assert.Equal(t, 1, f.stock(t, f.socks))

		var orders int64
		require.NoError(t, f.db.Model(&models.Order{}).Count(&orders).Error)
		assert.Zero(t, orders)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.service.CreateOrder(ctx, f.customer.UserID, &services.CreateOrderRequest{
			Items:           []services.OrderItemRequest{{ProductID: 999, Quantity: 1}},
			ShippingAddress: "1 Main Street",
		})
		requireKind(t, err, apperr.KindNotFound, i18n.KeyProductNotFound)
	})
}

func TestOrderService_Visibility(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	mine := f.place(t, f.customer, services.OrderItemRequest{ProductID: f.shirt.ID, Quantity: 1})
	f.place(t, f.other, services.OrderItemRequest{ProductID: f.shirt.ID, Quantity: 1})

	params := utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}

	orders, total, err := f.service.ListOrders(ctx, f.customer, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)

	_, total, err = f.service.ListOrders(ctx, f.admin, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, err = f.service.GetOrder(ctx, f.other, mine.ID)
	requireKind(t, err, apperr.KindNotFound, i18n.KeyOrderNotFound)

	order, err := f.service.GetOrder(ctx, f.admin, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.OrderNumber, order.OrderNumber)
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	order := f.place(t, f.customer, services.OrderItemRequest{ProductID: f.shirt.ID, Quantity: 4})
	require.Equal(t, 1, f.stock(t, f.shirt))

	_, err := f.service.CancelOrder(ctx, f.other, order.ID)
	requireKind(t, err, apperr.KindNotFound, i18n.KeyOrderNotFound)

	cancelled, err := f.service.CancelOrder(ctx, f.customer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 5, f.stock(t, f.shirt))

	_, err = f.service.CancelOrder(ctx, f.customer, order.ID)
	requireKind(t, err, apperr.KindConflict, i18n.KeyOrderNotCancellable)
	assert.Equal(t, 5, f.stock(t, f.shirt))
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	order := f.place(t, f.customer, services.OrderItemRequest{ProductID: f.shirt.ID, Quantity: 2})

	_, err := f.service.UpdateStatus(ctx, order.ID, &services.UpdateOrderStatusRequest{Status: models.OrderStatusShipped})
	requireKind(t, err, apperr.KindConflict, i18n.KeyOrderInvalidTransition)

	for _, next := range []models.OrderStatus{models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered} {
		updated, err := f.service.UpdateStatus(ctx, order.ID, &services.UpdateOrderStatusRequest{Status: next})
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	_, err = f.service.UpdateStatus(ctx, order.ID, &services.UpdateOrderStatusRequest{Status: models.OrderStatusCancelled})
	requireKind(t, err, apperr.KindConflict, i18n.KeyOrderInvalidTransition)
	assert.Equal(t, 3, f.stock(t, f.shirt))

	_, err = f.service.UpdateStatus(ctx, 999, &services.UpdateOrderStatusRequest{Status: models.OrderStatusProcessing})
	requireKind(t, err, apperr.KindNotFound, i18n.KeyOrderNotFound)
}

func TestOrderService_AdminCancelRestoresStock(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	order := f.place(t, f.customer, services.OrderItemRequest{ProductID: f.socks.ID, Quantity: 1})
	_, err := f.service.UpdateStatus(ctx, order.ID, &services.UpdateOrderStatusRequest{Status: models.OrderStatusProcessing})
	require.NoError(t, err)

	cancelled, err := f.service.UpdateStatus(ctx, order.ID, &services.UpdateOrderStatusRequest{Status: models.OrderStatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 1, f.stock(t, f.socks))
}
