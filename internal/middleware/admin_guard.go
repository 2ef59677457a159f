package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminGuard はセッションの管理者フラグを確認する。
// 立っていなければログイン画面へリダイレクト（/admin配下に一律で掛ける）。
func AdminGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := SessionFrom(c)
			if !ok || !sess.IsAdmin {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			return next(c)
		}
	}
}
