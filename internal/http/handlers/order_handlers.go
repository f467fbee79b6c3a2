package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
	"github.com/you/marketsvc/internal/http/middleware"
)

// OrderHandlers handles order HTTP requests
type OrderHandlers struct {
	orderSvc domain.OrderService
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(orderSvc domain.OrderService) *OrderHandlers {
	return &OrderHandlers{orderSvc: orderSvc}
}

// OrderLine represents one requested line of an order
type OrderLine struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// PlaceOrderRequest represents an order placement request
type PlaceOrderRequest struct {
	ShopkeeperID string      `json:"shopkeeper_id" binding:"required,uuid"`
	Items        []OrderLine `json:"items" binding:"required,min=1,dive"`
}

// UpdateStatusRequest represents an order status change request
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PlaceOrder handles order placement by the authenticated customer
func (h *OrderHandlers) PlaceOrder(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shopkeeperID, err := uuid.Parse(req.ShopkeeperID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shopkeeper id"})
		return
	}

	lines := make([]domain.OrderLineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		itemID, err := uuid.Parse(item.ItemID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}
		lines = append(lines, domain.OrderLineRequest{ItemID: itemID, Quantity: item.Quantity})
	}

	order, err := h.orderSvc.PlaceOrder(c.Request.Context(), user.ID, shopkeeperID, lines)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
		case errors.Is(err, domain.ErrOrderEmpty), errors.Is(err, domain.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case domain.IsTransient(err):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": orderPayload(order)})
}

// ListOrders returns the caller's orders, scoped by role
func (h *OrderHandlers) ListOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	orders, err := h.orderSvc.GetOrdersForUser(c.Request.Context(), user.ID, user.Role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			// Unreachable through a verified token; loud log, opaque reply.
			log.Printf("orders: invalid role %q for user %s", user.Role, user.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
			return
		}
		if domain.IsTransient(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	payload := make([]gin.H, 0, len(orders))
	for i := range orders {
		payload = append(payload, orderPayload(&orders[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// GetOrder returns details for a single order
func (h *OrderHandlers) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orderSvc.GetOrderDetails(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case domain.IsTransient(err):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orderPayload(order)})
}

// UpdateStatus handles order status changes
func (h *OrderHandlers) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderSvc.UpdateOrderStatus(c.Request.Context(), orderID, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case domain.IsTransient(err):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orderPayload(order)})
}

func orderPayload(order *domain.Order) gin.H {
	items := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, gin.H{
			"inventory_item_id": item.InventoryItemID,
			"quantity":          item.Quantity,
			"price_at_order":    item.PriceAtOrder.String(),
		})
	}
	return gin.H{
		"id":            order.ID,
		"customer_id":   order.CustomerID,
		"shopkeeper_id": order.ShopkeeperID,
		"status":        order.Status,
		"items":         items,
		"created_at":    order.CreatedAt,
		"updated_at":    order.UpdatedAt,
	}
}
