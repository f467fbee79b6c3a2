package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	// Update writes the user conditioned on the stored token_version matching
	// user.TokenVersion; a concurrent bump surfaces as ErrVersionConflict.
	Update(ctx context.Context, user *User) error
	// IncrementTokenVersion advances the revocation counter by exactly one as
	// a single atomic write and returns the new value.
	IncrementTokenVersion(ctx context.Context, userID uuid.UUID) (int, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
}

// InventoryRepository defines inventory item data access operations
type InventoryRepository interface {
	Create(ctx context.Context, item *InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)
	FindByIDAndShopkeeper(ctx context.Context, id, shopkeeperID uuid.UUID) (*InventoryItem, error)
	FindByShopkeeperID(ctx context.Context, shopkeeperID uuid.UUID) ([]InventoryItem, error)
	Update(ctx context.Context, item *InventoryItem) error
	Delete(ctx context.Context, id, shopkeeperID uuid.UUID) error
}

// OrderRepository defines order data access operations. Create persists the
// order header and all of its items as one transaction.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]Order, error)
	FindByShopkeeperID(ctx context.Context, shopkeeperID uuid.UUID) ([]Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
}

// PasswordService defines the one-way password function
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService encodes and decodes signed session tokens. Both directions are
// pure; neither touches storage.
type TokenService interface {
	Issue(userID uuid.UUID, role Role, tokenVersion int) (string, error)
	Decode(token string) (*TokenClaims, error)
	// DecodeExpired verifies the signature but ignores the expiry claim.
	// Logout accepts expired tokens so holders can always revoke.
	DecodeExpired(token string) (*TokenClaims, error)
}

// AuthService defines registration and session lifecycle operations
type AuthService interface {
	Register(ctx context.Context, username, email, password string, role Role) (*User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

// AccessGuard resolves and authorizes the caller of a request. Identity and
// role travel as explicit arguments from here on, never as ambient state.
type AccessGuard interface {
	Authenticate(ctx context.Context, token string) (*User, error)
	AuthorizeOwnership(user *User, required Role, ownerID uuid.UUID) error
}

// OrderService defines the order placement and lifecycle operations
type OrderService interface {
	PlaceOrder(ctx context.Context, customerID, shopkeeperID uuid.UUID, lines []OrderLineRequest) (*Order, error)
	GetOrdersForUser(ctx context.Context, userID uuid.UUID, role Role) ([]Order, error)
	GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status OrderStatus) (*Order, error)
}

// InventoryService defines shopkeeper inventory management operations
type InventoryService interface {
	AddItem(ctx context.Context, shopkeeperID uuid.UUID, name string, price decimal.Decimal, imageURL string) (*InventoryItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*InventoryItem, error)
	UpdateItem(ctx context.Context, shopkeeperID, itemID uuid.UUID, name string, price decimal.Decimal, imageURL string) (*InventoryItem, error)
	RemoveItem(ctx context.Context, shopkeeperID, itemID uuid.UUID) error
	ListByShopkeeper(ctx context.Context, shopkeeperID uuid.UUID) ([]InventoryItem, error)
}

// ShopkeeperService defines shopkeeper discovery operations
type ShopkeeperService interface {
	ListShopkeepers(ctx context.Context) ([]User, error)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer is the subset of the Casbin enforcer the service needs
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
