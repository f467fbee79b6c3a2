package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you/marketsvc/domain"
	"github.com/you/marketsvc/internal/mocks"
)

func TestInventoryService_AddItem(t *testing.T) {
	ctx := context.Background()
	shopkeeperID := uuid.New()

	userRepoWith := func(role domain.Role) *mocks.MockUserRepository {
		repo := mocks.NewMockUserRepository()
		repo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id == shopkeeperID {
				return &domain.User{ID: id, Role: role}, nil
			}
			return nil, domain.ErrUserNotFound
		}
		return repo
	}

	t.Run("success", func(t *testing.T) {
		invRepo := mocks.NewMockInventoryRepository()
		var created *domain.InventoryItem
		invRepo.CreateFunc = func(ctx context.Context, item *domain.InventoryItem) error {
			created = item
			return nil
		}
		svc := NewInventoryService(invRepo, userRepoWith(domain.RoleShopkeeper))

		item, err := svc.AddItem(ctx, shopkeeperID, "amulet", decimal.RequireFromString("19.99"), "https://img.example.com/amulet.png")
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}
		if item.ShopkeeperID != shopkeeperID || item.Name != "amulet" {
			t.Errorf("AddItem() = %+v", item)
		}
		if item.ID == uuid.Nil {
			t.Error("item id not allocated")
		}
		if created == nil || created.ID != item.ID {
			t.Error("item was not persisted")
		}
	})

	t.Run("owner is not a shopkeeper", func(t *testing.T) {
		svc := NewInventoryService(mocks.NewMockInventoryRepository(), userRepoWith(domain.RoleCustomer))

		_, err := svc.AddItem(ctx, shopkeeperID, "amulet", decimal.RequireFromString("19.99"), "")
		if !errors.Is(err, domain.ErrInvalidRole) {
			t.Errorf("AddItem(customer owner) error = %v, want ErrInvalidRole", err)
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		svc := NewInventoryService(mocks.NewMockInventoryRepository(), mocks.NewMockUserRepository())

		_, err := svc.AddItem(ctx, uuid.New(), "amulet", decimal.RequireFromString("19.99"), "")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("AddItem(unknown owner) error = %v, want ErrUserNotFound", err)
		}
	})
}

func TestInventoryService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	shopkeeperID := uuid.New()
	itemID := uuid.New()

	t.Run("success", func(t *testing.T) {
		invRepo := mocks.NewMockInventoryRepository()
		stored := &domain.InventoryItem{
			ID:           itemID,
			ShopkeeperID: shopkeeperID,
			Name:         "amulet",
			Price:        decimal.RequireFromString("19.99"),
		}
		invRepo.FindByIDAndShopkeeperFunc = func(ctx context.Context, id, owner uuid.UUID) (*domain.InventoryItem, error) {
			if id == itemID && owner == shopkeeperID {
				copy := *stored
				return &copy, nil
			}
			return nil, domain.ErrItemNotFound
		}
		invRepo.UpdateFunc = func(ctx context.Context, item *domain.InventoryItem) error {
			stored = item
			return nil
		}
		invRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
			return stored, nil
		}
		svc := NewInventoryService(invRepo, mocks.NewMockUserRepository())

		item, err := svc.UpdateItem(ctx, shopkeeperID, itemID, "enchanted amulet", decimal.RequireFromString("24.99"), "")
		if err != nil {
			t.Fatalf("UpdateItem() error = %v", err)
		}
		if item.Name != "enchanted amulet" || !item.Price.Equal(decimal.RequireFromString("24.99")) {
			t.Errorf("UpdateItem() = %+v", item)
		}
	})

	t.Run("item owned by another shop", func(t *testing.T) {
		svc := NewInventoryService(mocks.NewMockInventoryRepository(), mocks.NewMockUserRepository())

		_, err := svc.UpdateItem(ctx, uuid.New(), itemID, "amulet", decimal.RequireFromString("1.00"), "")
		if !errors.Is(err, domain.ErrItemNotFound) {
			t.Errorf("UpdateItem(foreign item) error = %v, want ErrItemNotFound", err)
		}
	})
}

func TestInventoryService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	shopkeeperID := uuid.New()
	itemID := uuid.New()

	invRepo := mocks.NewMockInventoryRepository()
	var gotID, gotOwner uuid.UUID
	invRepo.DeleteFunc = func(ctx context.Context, id, owner uuid.UUID) error {
		gotID, gotOwner = id, owner
		return nil
	}
	svc := NewInventoryService(invRepo, mocks.NewMockUserRepository())

	if err := svc.RemoveItem(ctx, shopkeeperID, itemID); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if gotID != itemID || gotOwner != shopkeeperID {
		t.Errorf("delete scoped to (%s, %s), want (%s, %s)", gotID, gotOwner, itemID, shopkeeperID)
	}
}

func TestShopkeeperService_ListShopkeepers(t *testing.T) {
	ctx := context.Background()

	userRepo := mocks.NewMockUserRepository()
	userRepo.ListByRoleFunc = func(ctx context.Context, role domain.Role) ([]domain.User, error) {
		if role != domain.RoleShopkeeper {
			t.Errorf("ListByRole called with %s", role)
		}
		return []domain.User{
			{ID: uuid.New(), Username: "bob", Role: domain.RoleShopkeeper},
			{ID: uuid.New(), Username: "carol", Role: domain.RoleShopkeeper},
		}, nil
	}
	svc := NewShopkeeperService(userRepo)

	shopkeepers, err := svc.ListShopkeepers(ctx)
	if err != nil {
		t.Fatalf("ListShopkeepers() error = %v", err)
	}
	if len(shopkeepers) != 2 {
		t.Errorf("ListShopkeepers() returned %d, want 2", len(shopkeepers))
	}
}
