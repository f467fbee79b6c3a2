package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/marketsvc/domain"
)

// ShopkeeperHandlers handles shopkeeper discovery HTTP requests
type ShopkeeperHandlers struct {
	shopkeeperSvc domain.ShopkeeperService
}

// NewShopkeeperHandlers creates new shopkeeper handlers
func NewShopkeeperHandlers(shopkeeperSvc domain.ShopkeeperService) *ShopkeeperHandlers {
	return &ShopkeeperHandlers{shopkeeperSvc: shopkeeperSvc}
}

// List returns all shopkeepers on the platform
func (h *ShopkeeperHandlers) List(c *gin.Context) {
	shopkeepers, err := h.shopkeeperSvc.ListShopkeepers(c.Request.Context())
	if err != nil {
		if domain.IsTransient(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shopkeepers"})
		return
	}

	payload := make([]gin.H, 0, len(shopkeepers))
	for i := range shopkeepers {
		payload = append(payload, gin.H{
			"id":       shopkeepers[i].ID,
			"username": shopkeepers[i].Username,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": payload})
}
