package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
)

// OrderServiceImpl implements domain.OrderService
type OrderServiceImpl struct {
	orderRepo     domain.OrderRepository
	inventoryRepo domain.InventoryRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo domain.OrderRepository, inventoryRepo domain.InventoryRepository) domain.OrderService {
	return &OrderServiceImpl{
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
	}
}

// PlaceOrder implements domain.OrderService. Every requested line must
// resolve before anything is written; the unit price is snapshotted from the
// inventory item at this instant. The order id is allocated up front so the
// lines can reference their parent inside the single persisting transaction.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, customerID, shopkeeperID uuid.UUID, lines []domain.OrderLineRequest) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, domain.ErrOrderEmpty
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	now := time.Now()
	order := &domain.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		ShopkeeperID: shopkeeperID,
		Status:       domain.OrderStatusCreated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		invItem, err := s.inventoryRepo.FindByID(ctx, line.ItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ID:              uuid.New(),
			OrderID:         order.ID,
			InventoryItemID: invItem.ID,
			Quantity:        line.Quantity,
			PriceAtOrder:    invItem.Price,
		})
	}
	order.Items = items

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrdersForUser implements domain.OrderService. A role outside the two
// known values cannot come from a verified token, so it is treated as a
// programming error rather than a user-facing case.
func (s *OrderServiceImpl) GetOrdersForUser(ctx context.Context, userID uuid.UUID, role domain.Role) ([]domain.Order, error) {
	switch role {
	case domain.RoleCustomer:
		return s.orderRepo.FindByCustomerID(ctx, userID)
	case domain.RoleShopkeeper:
		return s.orderRepo.FindByShopkeeperID(ctx, userID)
	default:
		return nil, domain.ErrInvalidRole
	}
}

// GetOrderDetails implements domain.OrderService
func (s *OrderServiceImpl) GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return s.orderRepo.FindByID(ctx, orderID)
}

// UpdateOrderStatus implements domain.OrderService. Any transition between
// known states is accepted, including fulfilled back to created: no legality
// matrix has ever been specified for this path.
func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByID(ctx, orderID)
}
