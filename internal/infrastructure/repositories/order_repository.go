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

// OrderRepositoryImpl implements domain.OrderRepository using GORM
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// DBOrder represents the database model for an order header
type DBOrder struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"column:customer_id;type:uuid;index;not null"`
	ShopkeeperID uuid.UUID `gorm:"column:shopkeeper_id;type:uuid;index;not null"`
	Status       string    `gorm:"size:32;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []DBOrderItem `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (DBOrder) TableName() string {
	return "orders"
}

// DBOrderItem represents the database model for an order line
type DBOrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"column:order_id;type:uuid;index;not null"`
	InventoryItemID uuid.UUID       `gorm:"column:inventory_item_id;type:uuid;not null"`
	Quantity        int             `gorm:"not null"`
	PriceAtOrder    decimal.Decimal `gorm:"column:price_at_order;type:numeric(10,2);not null"`
}

// TableName returns the table name for GORM
func (DBOrderItem) TableName() string {
	return "order_items"
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create implements domain.OrderRepository. Header and lines land in one
// transaction: a failure on any row leaves zero rows for the order.
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *domain.Order) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbOrder := &DBOrder{
			ID:           order.ID,
			CustomerID:   order.CustomerID,
			ShopkeeperID: order.ShopkeeperID,
			Status:       string(order.Status),
			CreatedAt:    order.CreatedAt,
			UpdatedAt:    order.UpdatedAt,
		}
		if err := tx.Create(dbOrder).Error; err != nil {
			return err
		}

		dbItems := make([]DBOrderItem, 0, len(order.Items))
		for _, item := range order.Items {
			dbItems = append(dbItems, DBOrderItem{
				ID:              item.ID,
				OrderID:         item.OrderID,
				InventoryItemID: item.InventoryItemID,
				Quantity:        item.Quantity,
				PriceAtOrder:    item.PriceAtOrder,
			})
		}
		return tx.Create(&dbItems).Error
	})
	return translateStorageErr(err)
}

// FindByID implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var dbOrder DBOrder
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&dbOrder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, translateStorageErr(err)
	}
	return r.dbToDomain(&dbOrder), nil
}

// FindByCustomerID implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	return r.findAll(ctx, "customer_id = ?", customerID)
}

// FindByShopkeeperID implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindByShopkeeperID(ctx context.Context, shopkeeperID uuid.UUID) ([]domain.Order, error) {
	return r.findAll(ctx, "shopkeeper_id = ?", shopkeeperID)
}

func (r *OrderRepositoryImpl) findAll(ctx context.Context, query string, arg interface{}) ([]domain.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var dbOrders []DBOrder
	if err := r.db.WithContext(ctx).Preload("Items").Where(query, arg).Order("created_at").Find(&dbOrders).Error; err != nil {
		return nil, translateStorageErr(err)
	}
	orders := make([]domain.Order, 0, len(dbOrders))
	for i := range dbOrders {
		orders = append(orders, *r.dbToDomain(&dbOrders[i]))
	}
	return orders, nil
}

// UpdateStatus implements domain.OrderRepository
func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&DBOrder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return translateStorageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) dbToDomain(dbOrder *DBOrder) *domain.Order {
	items := make([]domain.OrderItem, 0, len(dbOrder.Items))
	for _, dbItem := range dbOrder.Items {
		items = append(items, domain.OrderItem{
			ID:              dbItem.ID,
			OrderID:         dbItem.OrderID,
			InventoryItemID: dbItem.InventoryItemID,
			Quantity:        dbItem.Quantity,
			PriceAtOrder:    dbItem.PriceAtOrder,
		})
	}
	return &domain.Order{
		ID:           dbOrder.ID,
		CustomerID:   dbOrder.CustomerID,
		ShopkeeperID: dbOrder.ShopkeeperID,
		Status:       domain.OrderStatus(dbOrder.Status),
		Items:        items,
		CreatedAt:    dbOrder.CreatedAt,
		UpdatedAt:    dbOrder.UpdatedAt,
	}
}
