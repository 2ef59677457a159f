package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

// 商品が消えていても明細は返す（LEFT JOIN、商品側は nil）。
func (r *OrderItemGormRepository) ListDetailByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemDetail, error) {
	var details []repo.OrderItemDetail
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("order_items.*, products.title as product_title, products.image_url as product_image_url").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id asc").
		Scan(&details).Error
	if err != nil {
		return []repo.OrderItemDetail{}, err
	}
	return details, nil
}
