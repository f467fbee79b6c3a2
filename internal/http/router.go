package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/marketsvc/internal/http/handlers"
	"github.com/you/marketsvc/internal/http/middleware"
)

// BuildRouter wires all handlers and middleware into a gin engine.
func BuildRouter(
	ah *handlers.AuthHandlers,
	oh *handlers.OrderHandlers,
	ih *handlers.InventoryHandlers,
	sh *handlers.ShopkeeperHandlers,
	authMW *middleware.AuthMW,
	casbinMW *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	// Logout stays outside the auth middleware: it accepts expired tokens.
	auth.POST("/logout", ah.Logout)

	v := r.Group("/", authMW.WithAuth(), casbinMW.Enforce())
	v.GET("/auth/me", ah.Me)

	v.GET("/shopkeepers", sh.List)
	v.GET("/shopkeepers/:id/inventory", ih.ListForShopkeeper)

	v.POST("/orders", oh.PlaceOrder)
	v.GET("/orders", oh.ListOrders)
	v.GET("/orders/:id", oh.GetOrder)
	v.PUT("/orders/:id/status", oh.UpdateStatus)

	v.POST("/inventory", ih.AddItem)
	v.GET("/inventory", ih.ListMine)
	v.PUT("/inventory/:id", ih.UpdateItem)
	v.DELETE("/inventory/:id", ih.DeleteItem)

	return r
}
