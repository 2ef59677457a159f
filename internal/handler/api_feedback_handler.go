package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/feedback のJSONミラー
type APIFeedbackHandler struct {
	feedback *usecase.FeedbackUsecase
}

// DI
func NewAPIFeedbackHandler(feedback *usecase.FeedbackUsecase) *APIFeedbackHandler {
	return &APIFeedbackHandler{feedback: feedback}
}

func (h *APIFeedbackHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/feedback")
	g.GET("", h.list)
	g.POST("", h.create)
}

type CreateFeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message" validate:"required"`
}

func (h *APIFeedbackHandler) list(c echo.Context) error {
	feedbacks, err := h.feedback.List(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err)
	}

	return apiOK(c, http.StatusOK, map[string]interface{}{
		"feedback": feedbacks,
		"count":    len(feedbacks),
	})
}

func (h *APIFeedbackHandler) create(c echo.Context) error {
	var req CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	f, err := h.feedback.Add(c.Request().Context(), usecase.FeedbackInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return writeAPIError(c, err)
	}
	return apiOK(c, http.StatusCreated, f)
}
