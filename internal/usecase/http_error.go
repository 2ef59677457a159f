package usecase

import (
	"errors"
	"fmt"
)

// HTTPステータスとメッセージを持つエラー。
// 400=入力不正 / 404=見つからない / 401=未ログイン / 500=ストア障害。
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
