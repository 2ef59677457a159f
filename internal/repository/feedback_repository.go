package repository

import (
	"app/internal/domain/model"
	"context"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f model.Feedback) (model.Feedback, error)
	//新しい順
	List(ctx context.Context) ([]model.Feedback, error)
	//冪等
	Delete(ctx context.Context, id int64) error
}
