package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you/marketsvc/domain"
	"github.com/you/marketsvc/internal/http/middleware"
)

// InventoryHandlers handles shopkeeper inventory HTTP requests
type InventoryHandlers struct {
	inventorySvc domain.InventoryService
	guard        domain.AccessGuard
}

// NewInventoryHandlers creates new inventory handlers
func NewInventoryHandlers(inventorySvc domain.InventoryService, guard domain.AccessGuard) *InventoryHandlers {
	return &InventoryHandlers{
		inventorySvc: inventorySvc,
		guard:        guard,
	}
}

// ItemRequest represents an add/update inventory item request
type ItemRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Price    string `json:"price" binding:"required"`
	ImageURL string `json:"image_url" binding:"omitempty,max=255"`
}

// AddItem handles listing a new inventory item for the calling shopkeeper
func (h *InventoryHandlers) AddItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	if err := h.guard.AuthorizeOwnership(user, domain.RoleShopkeeper, user.ID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	item, err := h.inventorySvc.AddItem(c.Request.Context(), user.ID, req.Name, price, req.ImageURL)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": itemPayload(item)})
}

// UpdateItem handles editing an inventory item. Only the owning shopkeeper
// may mutate it; a mismatched owner is a Forbidden, not a NotFound.
func (h *InventoryHandlers) UpdateItem(c *gin.Context) {
	user, item, ok := h.loadOwned(c)
	if !ok {
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	updated, err := h.inventorySvc.UpdateItem(c.Request.Context(), user.ID, item.ID, req.Name, price, req.ImageURL)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": itemPayload(updated)})
}

// DeleteItem handles removing an inventory item
func (h *InventoryHandlers) DeleteItem(c *gin.Context) {
	user, item, ok := h.loadOwned(c)
	if !ok {
		return
	}

	if err := h.inventorySvc.RemoveItem(c.Request.Context(), user.ID, item.ID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "item removed"}})
}

// ListMine returns the calling shopkeeper's inventory
func (h *InventoryHandlers) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	h.list(c, user.ID)
}

// ListForShopkeeper returns a shopkeeper's inventory for browsing customers
func (h *InventoryHandlers) ListForShopkeeper(c *gin.Context) {
	shopkeeperID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shopkeeper id"})
		return
	}
	h.list(c, shopkeeperID)
}

func (h *InventoryHandlers) list(c *gin.Context, shopkeeperID uuid.UUID) {
	items, err := h.inventorySvc.ListByShopkeeper(c.Request.Context(), shopkeeperID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(items))
	for i := range items {
		payload = append(payload, itemPayload(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// loadOwned resolves the :id item and enforces the ownership rule: the
// caller must be a shopkeeper and must own the item.
func (h *InventoryHandlers) loadOwned(c *gin.Context) (*domain.User, *domain.InventoryItem, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return nil, nil, false
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return nil, nil, false
	}

	item, err := h.inventorySvc.GetItem(c.Request.Context(), itemID)
	if err != nil {
		h.writeError(c, err)
		return nil, nil, false
	}

	if err := h.guard.AuthorizeOwnership(user, domain.RoleShopkeeper, item.ShopkeeperID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, nil, false
	}
	return user, item, true
}

func (h *InventoryHandlers) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "shopkeeper not found"})
	case errors.Is(err, domain.ErrInvalidRole):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case domain.IsTransient(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "inventory operation failed"})
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if price.IsNegative() {
		return decimal.Decimal{}, errors.New("negative price")
	}
	return price, nil
}

func itemPayload(item *domain.InventoryItem) gin.H {
	return gin.H{
		"id":            item.ID,
		"shopkeeper_id": item.ShopkeeperID,
		"name":          item.Name,
		"price":         item.Price.String(),
		"image_url":     item.ImageURL,
		"created_at":    item.CreatedAt,
		"updated_at":    item.UpdatedAt,
	}
}
