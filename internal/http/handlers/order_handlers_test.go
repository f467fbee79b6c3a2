package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/you/marketsvc/domain"
	"github.com/you/marketsvc/internal/http/middleware"
	"github.com/you/marketsvc/internal/mocks"
)

// withUser injects a verified user the way the auth middleware would.
func withUser(user *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUser, user)
		c.Next()
	}
}

func orderRouter(orderSvc domain.OrderService, user *domain.User) *gin.Engine {
	h := NewOrderHandlers(orderSvc)
	r := gin.New()
	g := r.Group("/", withUser(user))
	g.POST("/orders", h.PlaceOrder)
	g.GET("/orders", h.ListOrders)
	g.GET("/orders/:id", h.GetOrder)
	g.PATCH("/orders/:id/status", h.UpdateStatus)
	return r
}

func TestOrderHandlers_PlaceOrder(t *testing.T) {
	customer := &domain.User{ID: uuid.New(), Role: domain.RoleCustomer}
	shopkeeperID := uuid.New()
	itemID := uuid.New()

	t.Run("created", func(t *testing.T) {
		svc := mocks.NewMockOrderService()
		svc.PlaceOrderFunc = func(ctx context.Context, customerID, skID uuid.UUID, lines []domain.OrderLineRequest) (*domain.Order, error) {
			assert.Equal(t, customer.ID, customerID)
			assert.Equal(t, shopkeeperID, skID)
			assert.Len(t, lines, 1)
			return &domain.Order{
				ID:           uuid.New(),
				CustomerID:   customerID,
				ShopkeeperID: skID,
				Status:       domain.OrderStatusCreated,
				Items: []domain.OrderItem{{
					ID:              uuid.New(),
					InventoryItemID: itemID,
					Quantity:        lines[0].Quantity,
					PriceAtOrder:    decimal.RequireFromString("19.99"),
				}},
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		w := performJSON(t, orderRouter(svc, customer), http.MethodPost, "/orders", gin.H{
			"shopkeeper_id": shopkeeperID.String(),
			"items":         []gin.H{{"item_id": itemID.String(), "quantity": 2}},
		}, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "19.99")
		assert.Contains(t, w.Body.String(), "created")
	})

	t.Run("unknown item", func(t *testing.T) {
		svc := mocks.NewMockOrderService()
		svc.PlaceOrderFunc = func(ctx context.Context, customerID, skID uuid.UUID, lines []domain.OrderLineRequest) (*domain.Order, error) {
			return nil, domain.ErrItemNotFound
		}
		w := performJSON(t, orderRouter(svc, customer), http.MethodPost, "/orders", gin.H{
			"shopkeeper_id": shopkeeperID.String(),
			"items":         []gin.H{{"item_id": itemID.String(), "quantity": 1}},
		}, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty items rejected by binding", func(t *testing.T) {
		w := performJSON(t, orderRouter(mocks.NewMockOrderService(), customer), http.MethodPost, "/orders", gin.H{
			"shopkeeper_id": shopkeeperID.String(),
			"items":         []gin.H{},
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero quantity rejected by binding", func(t *testing.T) {
		w := performJSON(t, orderRouter(mocks.NewMockOrderService(), customer), http.MethodPost, "/orders", gin.H{
			"shopkeeper_id": shopkeeperID.String(),
			"items":         []gin.H{{"item_id": itemID.String(), "quantity": 0}},
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage down", func(t *testing.T) {
		svc := mocks.NewMockOrderService()
		svc.PlaceOrderFunc = func(ctx context.Context, customerID, skID uuid.UUID, lines []domain.OrderLineRequest) (*domain.Order, error) {
			return nil, domain.ErrStorageUnavailable
		}
		w := performJSON(t, orderRouter(svc, customer), http.MethodPost, "/orders", gin.H{
			"shopkeeper_id": shopkeeperID.String(),
			"items":         []gin.H{{"item_id": itemID.String(), "quantity": 1}},
		}, nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestOrderHandlers_ListOrders(t *testing.T) {
	shopkeeper := &domain.User{ID: uuid.New(), Role: domain.RoleShopkeeper}

	svc := mocks.NewMockOrderService()
	svc.GetOrdersForUserFunc = func(ctx context.Context, userID uuid.UUID, role domain.Role) ([]domain.Order, error) {
		assert.Equal(t, shopkeeper.ID, userID)
		assert.Equal(t, domain.RoleShopkeeper, role)
		return []domain.Order{
			{ID: uuid.New(), ShopkeeperID: userID, Status: domain.OrderStatusCreated},
			{ID: uuid.New(), ShopkeeperID: userID, Status: domain.OrderStatusFulfilled},
		}, nil
	}
	w := performJSON(t, orderRouter(svc, shopkeeper), http.MethodGet, "/orders", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fulfilled")
}

func TestOrderHandlers_GetOrder(t *testing.T) {
	customer := &domain.User{ID: uuid.New(), Role: domain.RoleCustomer}

	t.Run("not found", func(t *testing.T) {
		w := performJSON(t, orderRouter(mocks.NewMockOrderService(), customer), http.MethodGet, "/orders/"+uuid.NewString(), nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := performJSON(t, orderRouter(mocks.NewMockOrderService(), customer), http.MethodGet, "/orders/not-a-uuid", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandlers_UpdateStatus(t *testing.T) {
	shopkeeper := &domain.User{ID: uuid.New(), Role: domain.RoleShopkeeper}
	orderID := uuid.New()

	t.Run("ok", func(t *testing.T) {
		svc := mocks.NewMockOrderService()
		svc.UpdateOrderStatusFunc = func(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
			return &domain.Order{ID: id, Status: status}, nil
		}
		w := performJSON(t, orderRouter(svc, shopkeeper), http.MethodPatch, "/orders/"+orderID.String()+"/status", gin.H{
			"status": "processing",
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "processing")
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := mocks.NewMockOrderService()
		svc.UpdateOrderStatusFunc = func(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
			return nil, domain.ErrInvalidStatus
		}
		w := performJSON(t, orderRouter(svc, shopkeeper), http.MethodPatch, "/orders/"+orderID.String()+"/status", gin.H{
			"status": "shipped",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("order not found", func(t *testing.T) {
		w := performJSON(t, orderRouter(mocks.NewMockOrderService(), shopkeeper), http.MethodPatch, "/orders/"+orderID.String()+"/status", gin.H{
			"status": "cancelled",
		}, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
