package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 検索条件。フィルタは全てAND。
type ProductSearchQuery struct {
	Q          string
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	//許可リスト外の値はid desc にフォールバックする
	SortField string
	SortOrder string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)

	//全項目置き換え。無ければ ErrNotFound
	Update(ctx context.Context, p model.Product) error

	//冪等。無くてもエラーにしない
	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (model.Product, error)

	//新しい順。limit<=0 なら全件
	List(ctx context.Context, limit int) ([]model.Product, error)

	Search(ctx context.Context, q ProductSearchQuery) ([]model.Product, error)

	//レビュー集計後の平均値を書き戻す
	UpdateRating(ctx context.Context, productID int64, rating float64) error
}
