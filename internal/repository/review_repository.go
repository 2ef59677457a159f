package repository

import (
	"app/internal/domain/model"
	"context"
)

type ReviewRepository interface {
	Create(ctx context.Context, r model.Review) (model.Review, error)
	//新しい順
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	//レビューが無いときは {0, 0}
	Rating(ctx context.Context, productID int64) (avg float64, count int64, err error)
}
