package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
)

// MockInventoryRepository implements domain.InventoryRepository for testing
type MockInventoryRepository struct {
	CreateFunc                func(ctx context.Context, item *domain.InventoryItem) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	FindByIDAndShopkeeperFunc func(ctx context.Context, id, shopkeeperID uuid.UUID) (*domain.InventoryItem, error)
	FindByShopkeeperIDFunc    func(ctx context.Context, shopkeeperID uuid.UUID) ([]domain.InventoryItem, error)
	UpdateFunc                func(ctx context.Context, item *domain.InventoryItem) error
	DeleteFunc                func(ctx context.Context, id, shopkeeperID uuid.UUID) error
}

// NewMockInventoryRepository creates a new MockInventoryRepository
func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{}
}

func (m *MockInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrItemNotFound
}

func (m *MockInventoryRepository) FindByIDAndShopkeeper(ctx context.Context, id, shopkeeperID uuid.UUID) (*domain.InventoryItem, error) {
	if m.FindByIDAndShopkeeperFunc != nil {
		return m.FindByIDAndShopkeeperFunc(ctx, id, shopkeeperID)
	}
	return nil, domain.ErrItemNotFound
}

func (m *MockInventoryRepository) FindByShopkeeperID(ctx context.Context, shopkeeperID uuid.UUID) ([]domain.InventoryItem, error) {
	if m.FindByShopkeeperIDFunc != nil {
		return m.FindByShopkeeperIDFunc(ctx, shopkeeperID)
	}
	return nil, nil
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id, shopkeeperID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, shopkeeperID)
	}
	return nil
}

var _ domain.InventoryRepository = (*MockInventoryRepository)(nil)
