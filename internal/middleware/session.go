package middleware

import (
	"net/http"

	"app/internal/session"

	"github.com/labstack/echo/v4"
)

const CtxSessionKey = "session" // *session.Session

// LoadSession はクッキーからセッションを復元してcontextに入れる。
// 無い・壊れている・期限切れなら新しく作ってクッキーを発行し直す。
func LoadSession(m *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sess *session.Session

			if cookie, err := c.Cookie(session.CookieName); err == nil {
				if s, err := m.Lookup(cookie.Value); err == nil {
					sess = s
				}
			}

			if sess == nil {
				s, token, err := m.Create()
				if err != nil {
					return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
				}
				sess = s
				c.SetCookie(&http.Cookie{
					Name:     session.CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CtxSessionKey, sess)
			return next(c)
		}
	}
}

// contextからセッションを取り出す。
func SessionFrom(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get(CtxSessionKey).(*session.Session)
	return sess, ok
}
