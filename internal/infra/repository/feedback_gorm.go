package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type FeedbackGormRepository struct {
	db *gorm.DB
}

func NewFeedbackGormRepository(db *gorm.DB) *FeedbackGormRepository {
	return &FeedbackGormRepository{db: db}
}

func (r *FeedbackGormRepository) Create(ctx context.Context, f model.Feedback) (model.Feedback, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return model.Feedback{}, err
	}
	return f, nil
}

// 新しい順
func (r *FeedbackGormRepository) List(ctx context.Context) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&feedbacks).Error
	if err != nil {
		return []model.Feedback{}, err
	}
	return feedbacks, nil
}

// 冪等。無いIDでもエラーにしない。
func (r *FeedbackGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Feedback{}, id).Error
}
