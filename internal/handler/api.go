package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// JSON APIの共通エンベロープ。
type APIEnvelope struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func apiOK(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, APIEnvelope{Success: true, Data: data})
}

func apiError(c echo.Context, status int, message string) error {
	return c.JSON(status, APIEnvelope{Success: false, Error: message})
}

// API側はエラーメッセージをそのまま返す（HTML側と違い詳細を隠さない）。
func writeAPIError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return apiError(c, he.Status, he.Message)
	}
	return apiError(c, http.StatusInternalServerError, err.Error())
}
