package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
)

// MockOrderRepository implements domain.OrderRepository for testing
type MockOrderRepository struct {
	CreateFunc             func(ctx context.Context, order *domain.Order) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	FindByCustomerIDFunc   func(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error)
	FindByShopkeeperIDFunc func(ctx context.Context, shopkeeperID uuid.UUID) ([]domain.Order, error)
	UpdateStatusFunc       func(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
}

// NewMockOrderRepository creates a new MockOrderRepository
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	return nil
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrOrderNotFound
}

func (m *MockOrderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	if m.FindByCustomerIDFunc != nil {
		return m.FindByCustomerIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockOrderRepository) FindByShopkeeperID(ctx context.Context, shopkeeperID uuid.UUID) ([]domain.Order, error) {
	if m.FindByShopkeeperIDFunc != nil {
		return m.FindByShopkeeperIDFunc(ctx, shopkeeperID)
	}
	return nil, nil
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

var _ domain.OrderRepository = (*MockOrderRepository)(nil)
