package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/you/marketsvc/domain"
)

// InventoryRepositoryImpl implements domain.InventoryRepository using GORM
type InventoryRepositoryImpl struct {
	db *gorm.DB
}

// DBInventoryItem represents the database model for InventoryItem
type DBInventoryItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopkeeperID uuid.UUID       `gorm:"column:shopkeeper_id;type:uuid;index;not null"`
	Name         string          `gorm:"size:255;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ImageURL     string          `gorm:"column:image_url;size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBInventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return &InventoryRepositoryImpl{db: db}
}

// Create implements domain.InventoryRepository
func (r *InventoryRepositoryImpl) Create(ctx context.Context, item *domain.InventoryItem) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	dbItem := r.domainToDB(item)
	if err := r.db.WithContext(ctx).Create(dbItem).Error; err != nil {
		return translateStorageErr(err)
	}
	item.CreatedAt = dbItem.CreatedAt
	item.UpdatedAt = dbItem.UpdatedAt
	return nil
}

// FindByID implements domain.InventoryRepository
func (r *InventoryRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var dbItem DBInventoryItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbItem).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, translateStorageErr(err)
	}
	return r.dbToDomain(&dbItem), nil
}

// FindByIDAndShopkeeper implements domain.InventoryRepository
func (r *InventoryRepositoryImpl) FindByIDAndShopkeeper(ctx context.Context, id, shopkeeperID uuid.UUID) (*domain.InventoryItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var dbItem DBInventoryItem
	err := r.db.WithContext(ctx).Where("id = ? AND shopkeeper_id = ?", id, shopkeeperID).First(&dbItem).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, translateStorageErr(err)
	}
	return r.dbToDomain(&dbItem), nil
}

// FindByShopkeeperID implements domain.InventoryRepository
func (r *InventoryRepositoryImpl) FindByShopkeeperID(ctx context.Context, shopkeeperID uuid.UUID) ([]domain.InventoryItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var dbItems []DBInventoryItem
	if err := r.db.WithContext(ctx).Where("shopkeeper_id = ?", shopkeeperID).Order("created_at").Find(&dbItems).Error; err != nil {
		return nil, translateStorageErr(err)
	}
	items := make([]domain.InventoryItem, 0, len(dbItems))
	for i := range dbItems {
		items = append(items, *r.dbToDomain(&dbItems[i]))
	}
	return items, nil
}

// Update implements domain.InventoryRepository. The write stays scoped to the
// owning shopkeeper so a stale id can never touch another shop's row.
func (r *InventoryRepositoryImpl) Update(ctx context.Context, item *domain.InventoryItem) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&DBInventoryItem{}).
		Where("id = ? AND shopkeeper_id = ?", item.ID, item.ShopkeeperID).
		Updates(map[string]interface{}{
			"name":       item.Name,
			"price":      item.Price,
			"image_url":  item.ImageURL,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return translateStorageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete implements domain.InventoryRepository
func (r *InventoryRepositoryImpl) Delete(ctx context.Context, id, shopkeeperID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ? AND shopkeeper_id = ?", id, shopkeeperID).Delete(&DBInventoryItem{})
	if res.Error != nil {
		return translateStorageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *InventoryRepositoryImpl) domainToDB(item *domain.InventoryItem) *DBInventoryItem {
	return &DBInventoryItem{
		ID:           item.ID,
		ShopkeeperID: item.ShopkeeperID,
		Name:         item.Name,
		Price:        item.Price,
		ImageURL:     item.ImageURL,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func (r *InventoryRepositoryImpl) dbToDomain(dbItem *DBInventoryItem) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:           dbItem.ID,
		ShopkeeperID: dbItem.ShopkeeperID,
		Name:         dbItem.Name,
		Price:        dbItem.Price,
		ImageURL:     dbItem.ImageURL,
		CreatedAt:    dbItem.CreatedAt,
		UpdatedAt:    dbItem.UpdatedAt,
	}
}
