package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type FeedbackHandler struct {
	feedback *usecase.FeedbackUsecase
}

// DI
func NewFeedbackHandler(feedback *usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

func (h *FeedbackHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/feedback", h.page)
	e.POST("/feedback", h.submit)
}

func (h *FeedbackHandler) page(c echo.Context) error {
	feedbacks, err := h.feedback.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return render(c, "feedback.html", map[string]interface{}{
		"Feedbacks": feedbacks,
	})
}

func (h *FeedbackHandler) submit(c echo.Context) error {
	_, err := h.feedback.Add(c.Request().Context(), usecase.FeedbackInput{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Message: c.FormValue("message"),
	})
	if err != nil {
		flash(c, "danger", "Message must not be empty")
		return c.Redirect(http.StatusFound, "/feedback")
	}

	flash(c, "success", "Thank you! Your feedback has been sent.")
	return c.Redirect(http.StatusFound, "/feedback")
}
