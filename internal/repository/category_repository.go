package repository

import (
	"app/internal/domain/model"
	"context"
)

type CategoryRepository interface {
	Create(ctx context.Context, c model.Category) (model.Category, error)
	//名前順
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
}
