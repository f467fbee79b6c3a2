package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
)

// MockOrderService implements domain.OrderService for testing
type MockOrderService struct {
	PlaceOrderFunc        func(ctx context.Context, customerID, shopkeeperID uuid.UUID, lines []domain.OrderLineRequest) (*domain.Order, error)
	GetOrdersForUserFunc  func(ctx context.Context, userID uuid.UUID, role domain.Role) ([]domain.Order, error)
	GetOrderDetailsFunc   func(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	UpdateOrderStatusFunc func(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error)
}

// NewMockOrderService creates a new MockOrderService
func NewMockOrderService() *MockOrderService {
	return &MockOrderService{}
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, customerID, shopkeeperID uuid.UUID, lines []domain.OrderLineRequest) (*domain.Order, error) {
	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, customerID, shopkeeperID, lines)
	}
	return nil, domain.ErrItemNotFound
}

func (m *MockOrderService) GetOrdersForUser(ctx context.Context, userID uuid.UUID, role domain.Role) ([]domain.Order, error) {
	if m.GetOrdersForUserFunc != nil {
		return m.GetOrdersForUserFunc(ctx, userID, role)
	}
	return nil, nil
}

func (m *MockOrderService) GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	if m.GetOrderDetailsFunc != nil {
		return m.GetOrderDetailsFunc(ctx, orderID)
	}
	return nil, domain.ErrOrderNotFound
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	if m.UpdateOrderStatusFunc != nil {
		return m.UpdateOrderStatusFunc(ctx, orderID, status)
	}
	return nil, domain.ErrOrderNotFound
}

var _ domain.OrderService = (*MockOrderService)(nil)
