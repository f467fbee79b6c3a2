package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/marketsvc/domain"
	"github.com/you/marketsvc/internal/config"
	httpx "github.com/you/marketsvc/internal/http"
	"github.com/you/marketsvc/internal/http/handlers"
	"github.com/you/marketsvc/internal/http/middleware"
	"github.com/you/marketsvc/internal/infrastructure/auth"
	"github.com/you/marketsvc/internal/infrastructure/database"
	"github.com/you/marketsvc/internal/infrastructure/repositories"
	"github.com/you/marketsvc/internal/services"
)

// Run assembles the whole service and blocks serving HTTP. All wiring is
// explicit constructor calls; there is no container or service locator.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	inventoryRepo := repositories.NewInventoryRepository(gdb)
	orderRepo := repositories.NewOrderRepository(gdb)

	// Domain services
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc)
	guard := services.NewAccessGuard(tokenSvc, userRepo)
	orderSvc := services.NewOrderService(orderRepo, inventoryRepo)
	inventorySvc := services.NewInventoryService(inventoryRepo, userRepo)
	shopkeeperSvc := services.NewShopkeeperService(userRepo)
	policySvc := services.NewPolicyService(cas.E)

	// Handlers and middleware
	authH := handlers.NewAuthHandlers(authSvc)
	orderH := handlers.NewOrderHandlers(orderSvc)
	inventoryH := handlers.NewInventoryHandlers(inventorySvc, guard)
	shopkeeperH := handlers.NewShopkeeperHandlers(shopkeeperSvc)
	authMW := middleware.NewAuthMW(guard)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, orderH, inventoryH, shopkeeperH, authMW, casbinMW)

	if len(policySvc.GetPolicies()) == 0 {
		seedPolicies(policySvc)
		log.Println("casbin: seeded default role policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role-to-route policy set on first boot.
func seedPolicies(policySvc domain.PolicyService) {
	policies := [][3]string{
		{"role_customer", "/auth/me", "GET"},
		{"role_customer", "/shopkeepers", "GET"},
		{"role_customer", "/shopkeepers/:id/inventory", "GET"},
		{"role_customer", "/orders", "(GET|POST)"},
		{"role_customer", "/orders/:id", "GET"},
		{"role_shopkeeper", "/auth/me", "GET"},
		{"role_shopkeeper", "/shopkeepers", "GET"},
		{"role_shopkeeper", "/orders", "GET"},
		{"role_shopkeeper", "/orders/:id", "GET"},
		{"role_shopkeeper", "/orders/:id/status", "PUT"},
		{"role_shopkeeper", "/inventory", "(GET|POST)"},
		{"role_shopkeeper", "/inventory/:id", "(PUT|DELETE)"},
	}
	for _, p := range policies {
		if err := policySvc.AddPolicy(p[0], p[1], p[2]); err != nil {
			log.Printf("casbin: failed to seed policy %v: %v", p, err)
		}
	}
}
