package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/session"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecaseのHTTPErrorをそのままJSONにする。HTML側では使わない。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// HTML描画。フラッシュと管理者フラグを必ず渡す。
func render(c echo.Context, name string, data map[string]interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	if sess, ok := middleware.SessionFrom(c); ok {
		data["Flashes"] = sess.TakeFlashes()
		data["IsAdmin"] = sess.IsAdmin
	}
	return c.Render(http.StatusOK, name, data)
}

func flash(c echo.Context, level, message string) {
	if sess, ok := middleware.SessionFrom(c); ok {
		sess.AddFlash(level, message)
	}
}

func sessionFrom(c echo.Context) *session.Session {
	sess, _ := middleware.SessionFrom(c)
	return sess
}
