package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you/marketsvc/domain"
)

// MockInventoryService implements domain.InventoryService for testing
type MockInventoryService struct {
	AddItemFunc          func(ctx context.Context, shopkeeperID uuid.UUID, name string, price decimal.Decimal, imageURL string) (*domain.InventoryItem, error)
	GetItemFunc          func(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	UpdateItemFunc       func(ctx context.Context, shopkeeperID, itemID uuid.UUID, name string, price decimal.Decimal, imageURL string) (*domain.InventoryItem, error)
	RemoveItemFunc       func(ctx context.Context, shopkeeperID, itemID uuid.UUID) error
	ListByShopkeeperFunc func(ctx context.Context, shopkeeperID uuid.UUID) ([]domain.InventoryItem, error)
}

// NewMockInventoryService creates a new MockInventoryService
func NewMockInventoryService() *MockInventoryService {
	return &MockInventoryService{}
}

func (m *MockInventoryService) AddItem(ctx context.Context, shopkeeperID uuid.UUID, name string, price decimal.Decimal, imageURL string) (*domain.InventoryItem, error) {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, shopkeeperID, name, price, imageURL)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockInventoryService) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, itemID)
	}
	return nil, domain.ErrItemNotFound
}

func (m *MockInventoryService) UpdateItem(ctx context.Context, shopkeeperID, itemID uuid.UUID, name string, price decimal.Decimal, imageURL string) (*domain.InventoryItem, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, shopkeeperID, itemID, name, price, imageURL)
	}
	return nil, domain.ErrItemNotFound
}

func (m *MockInventoryService) RemoveItem(ctx context.Context, shopkeeperID, itemID uuid.UUID) error {
	if m.RemoveItemFunc != nil {
		return m.RemoveItemFunc(ctx, shopkeeperID, itemID)
	}
	return domain.ErrItemNotFound
}

func (m *MockInventoryService) ListByShopkeeper(ctx context.Context, shopkeeperID uuid.UUID) ([]domain.InventoryItem, error) {
	if m.ListByShopkeeperFunc != nil {
		return m.ListByShopkeeperFunc(ctx, shopkeeperID)
	}
	return nil, nil
}

var _ domain.InventoryService = (*MockInventoryService)(nil)
