package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//新しい順
	List(ctx context.Context) ([]model.Order, error)
	//無ければ ErrNotFound。ステータス文字列は検証しない
	UpdateStatus(ctx context.Context, orderID int64, status string) error
}

// 商品が消えていても明細は返す。そのとき商品側の項目は nil。
type OrderItemDetail struct {
	model.OrderItem
	ProductTitle    *string `json:"product_title"`
	ProductImageURL *string `json:"product_image_url"`
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	//products への LEFT JOIN 付き
	ListDetailByOrderID(ctx context.Context, orderID int64) ([]OrderItemDetail, error)
}
