package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you/marketsvc/domain"
)

// InventoryServiceImpl implements domain.InventoryService
type InventoryServiceImpl struct {
	inventoryRepo domain.InventoryRepository
	userRepo      domain.UserRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo domain.InventoryRepository, userRepo domain.UserRepository) domain.InventoryService {
	return &InventoryServiceImpl{
		inventoryRepo: inventoryRepo,
		userRepo:      userRepo,
	}
}

// AddItem implements domain.InventoryService
func (s *InventoryServiceImpl) AddItem(ctx context.Context, shopkeeperID uuid.UUID, name string, price decimal.Decimal, imageURL string) (*domain.InventoryItem, error) {
	shopkeeper, err := s.userRepo.FindByID(ctx, shopkeeperID)
	if err != nil {
		return nil, err
	}
	if shopkeeper.Role != domain.RoleShopkeeper {
		return nil, domain.ErrInvalidRole
	}

	now := time.Now()
	item := &domain.InventoryItem{
		ID:           uuid.New(),
		ShopkeeperID: shopkeeperID,
		Name:         name,
		Price:        price,
		ImageURL:     imageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem implements domain.InventoryService
func (s *InventoryServiceImpl) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	return s.inventoryRepo.FindByID(ctx, itemID)
}

// UpdateItem implements domain.InventoryService. The lookup is scoped by
// shopkeeper, so an id belonging to another shop reads as absent.
func (s *InventoryServiceImpl) UpdateItem(ctx context.Context, shopkeeperID, itemID uuid.UUID, name string, price decimal.Decimal, imageURL string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindByIDAndShopkeeper(ctx, itemID, shopkeeperID)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.Price = price
	item.ImageURL = imageURL
	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.inventoryRepo.FindByID(ctx, itemID)
}

// RemoveItem implements domain.InventoryService
func (s *InventoryServiceImpl) RemoveItem(ctx context.Context, shopkeeperID, itemID uuid.UUID) error {
	return s.inventoryRepo.Delete(ctx, itemID, shopkeeperID)
}

// ListByShopkeeper implements domain.InventoryService
func (s *InventoryServiceImpl) ListByShopkeeper(ctx context.Context, shopkeeperID uuid.UUID) ([]domain.InventoryItem, error) {
	return s.inventoryRepo.FindByShopkeeperID(ctx, shopkeeperID)
}
