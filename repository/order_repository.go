package repository

import (
	"context"

	"cafestaff/entity"

	"gorm.io/gorm"
)

// OrderRepository is the cafe_order table plus the lookups the fulfillment
// screens need.
type OrderRepository struct {
	*CrudRepository[entity.CafeOrder]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		CrudRepository: NewCrudRepository[entity.CafeOrder](db, ChildRef{Table: "manage", Column: "order_id"}),
	}
}

// ManagesOfTx lists the fulfillment records attached to an order inside tx.
func (r *OrderRepository) ManagesOfTx(tx *gorm.DB, orderID uint) ([]entity.Manage, error) {
	var items []entity.Manage
	err := tx.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

func (r *OrderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.CafeOrder{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// IsDone filters manage rows by completion.
func IsDone(done bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Where("isdone = ?", done) }
}
