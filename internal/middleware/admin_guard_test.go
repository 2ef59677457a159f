package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appmw "app/internal/middleware"
	"app/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newGuardedContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAdminGuard_RedirectsWithoutSession(t *testing.T) {
	c, rec := newGuardedContext(t)

	called := false
	h := appmw.AdminGuard()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, h(c))
	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminGuard_RedirectsNonAdminSession(t *testing.T) {
	c, rec := newGuardedContext(t)

	m := session.NewManager("test_secret", time.Hour)
	sess, _, err := m.Create()
	assert.NoError(t, err)
	c.Set(appmw.CtxSessionKey, sess)

	h := appmw.AdminGuard()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminGuard_PassesAdminSession(t *testing.T) {
	c, rec := newGuardedContext(t)

	m := session.NewManager("test_secret", time.Hour)
	sess, _, err := m.Create()
	assert.NoError(t, err)
	sess.IsAdmin = true
	c.Set(appmw.CtxSessionKey, sess)

	h := appmw.AdminGuard()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoadSession_IssuesCookieAndRestores(t *testing.T) {
	e := echo.New()
	m := session.NewManager("test_secret", time.Hour)
	mw := appmw.LoadSession(m)

	//1回目: クッキー無し → 新規発行
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var first *session.Session
	err := mw(func(c echo.Context) error {
		s, ok := appmw.SessionFrom(c)
		assert.True(t, ok)
		first = s
		s.Cart.Add(1, 2)
		return c.NoContent(http.StatusOK)
	})(c)
	assert.NoError(t, err)

	cookies := rec.Result().Cookies()
	var token string
	for _, ck := range cookies {
		if ck.Name == session.CookieName {
			token = ck.Value
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.NotEmpty(t, token)

	//2回目: 同じクッキーで同じセッションが復元される
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(req2, rec2)

	err = mw(func(c echo.Context) error {
		s, ok := appmw.SessionFrom(c)
		assert.True(t, ok)
		assert.Same(t, first, s)
		assert.Equal(t, int64(2), s.Cart.Quantity(1))
		return c.NoContent(http.StatusOK)
	})(c2)
	assert.NoError(t, err)
	//復元時はクッキーを発行し直さない
	assert.Empty(t, rec2.Result().Cookies())
}

func TestLoadSession_BadCookieGetsFreshSession(t *testing.T) {
	e := echo.New()
	m := session.NewManager("test_secret", time.Hour)
	mw := appmw.LoadSession(m)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(c echo.Context) error {
		s, ok := appmw.SessionFrom(c)
		assert.True(t, ok)
		assert.True(t, s.Cart.IsEmpty())
		return c.NoContent(http.StatusOK)
	})(c)
	assert.NoError(t, err)

	var reissued bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName && ck.Value != "garbage" {
			reissued = true
		}
	}
	assert.True(t, reissued)
}
