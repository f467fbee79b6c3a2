package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role identifies what a user is allowed to do on the platform.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleShopkeeper Role = "SHOPKEEPER"
)

// Valid reports whether the role is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleShopkeeper
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "created"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusFulfilled  OrderStatus = "fulfilled"
)

// Valid reports whether the status is one of the known states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusProcessing, OrderStatusCancelled, OrderStatusFulfilled:
		return true
	}
	return false
}

// User represents a registered account. TokenVersion is the revocation
// counter: every session token embeds the version current at issuance and
// stops verifying the moment the stored version advances past it.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	TokenVersion int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TokenClaims is the decoded claim set of a session token.
type TokenClaims struct {
	UserID       uuid.UUID
	Role         Role
	TokenVersion int
	IssuedAt     int64
	ExpiresAt    int64
}

// InventoryItem is a product listed by a shopkeeper.
type InventoryItem struct {
	ID           uuid.UUID
	ShopkeeperID uuid.UUID
	Name         string
	Price        decimal.Decimal
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Order is a multi-item purchase placed by a customer with one shopkeeper.
type Order struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	ShopkeeperID uuid.UUID
	Status       OrderStatus
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem is a single line of an order. PriceAtOrder is the unit price
// snapshotted at placement time; later edits to the inventory item never
// change it.
type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	InventoryItemID uuid.UUID
	Quantity        int
	PriceAtOrder    decimal.Decimal
}

// OrderLineRequest is a single requested line in a PlaceOrder call.
type OrderLineRequest struct {
	ItemID   uuid.UUID
	Quantity int
}
