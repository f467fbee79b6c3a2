package services

import (
	"context"

	"github.com/you/marketsvc/domain"
)

// ShopkeeperServiceImpl implements domain.ShopkeeperService
type ShopkeeperServiceImpl struct {
	userRepo domain.UserRepository
}

// NewShopkeeperService creates a new shopkeeper service
func NewShopkeeperService(userRepo domain.UserRepository) domain.ShopkeeperService {
	return &ShopkeeperServiceImpl{userRepo: userRepo}
}

// ListShopkeepers implements domain.ShopkeeperService
func (s *ShopkeeperServiceImpl) ListShopkeepers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByRole(ctx, domain.RoleShopkeeper)
}
