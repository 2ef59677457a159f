package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type FeedbackUsecase struct {
	feedbackRepo repo.FeedbackRepository
}

func NewFeedbackUsecase(feedbackRepo repo.FeedbackRepository) *FeedbackUsecase {
	return &FeedbackUsecase{feedbackRepo: feedbackRepo}
}

type FeedbackInput struct {
	Name    string
	Email   string
	Message string
}

// 空メッセージは拒否。名前が無ければ Anonymous。
func (u *FeedbackUsecase) Add(ctx context.Context, in FeedbackInput) (model.Feedback, error) {
	if strings.TrimSpace(in.Message) == "" {
		return model.Feedback{}, NewHTTPError(http.StatusBadRequest, "message must not be empty")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Anonymous"
	}

	f, err := u.feedbackRepo.Create(ctx, model.Feedback{
		Name:    name,
		Email:   strings.TrimSpace(in.Email),
		Message: in.Message,
	})
	if err != nil {
		return model.Feedback{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return f, nil
}

func (u *FeedbackUsecase) List(ctx context.Context) ([]model.Feedback, error) {
	feedbacks, err := u.feedbackRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return feedbacks, nil
}

// 冪等。
func (u *FeedbackUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.feedbackRepo.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
