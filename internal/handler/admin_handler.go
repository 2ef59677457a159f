package handler

import (
	"net/http"
	"strconv"
	"strings"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin 配下のHTTP。login/logout以外はAdminGuardで守る。
type AdminHandler struct {
	auth     *usecase.AdminAuthUsecase
	products *usecase.ProductUsecase
	orders   *usecase.OrderUsecase
	feedback *usecase.FeedbackUsecase
}

// DI
func NewAdminHandler(
	auth *usecase.AdminAuthUsecase,
	products *usecase.ProductUsecase,
	orders *usecase.OrderUsecase,
	feedback *usecase.FeedbackUsecase,
) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		products: products,
		orders:   orders,
		feedback: feedback,
	}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin")

	g.GET("/login", h.loginForm)
	g.POST("/login", h.login)
	g.GET("/logout", h.logout)

	guarded := g.Group("", middleware.AdminGuard())
	guarded.GET("", h.dashboard)
	guarded.GET("/products", h.productList)
	guarded.GET("/products/add", h.productForm)
	guarded.POST("/products/add", h.productAdd)
	guarded.GET("/products/edit/:id", h.productEditForm)
	guarded.POST("/products/edit/:id", h.productEdit)
	guarded.POST("/products/delete/:id", h.productDelete)
	guarded.GET("/orders", h.orderList)
	guarded.GET("/orders/:id", h.orderDetail)
	guarded.POST("/orders/:id/status", h.orderStatus)
	guarded.POST("/feedback/delete/:id", h.feedbackDelete)
}

func (h *AdminHandler) loginForm(c echo.Context) error {
	return render(c, "admin_login.html", nil)
}

// 共有パスワードの確認。通ればセッションの管理者フラグを立てる。
func (h *AdminHandler) login(c echo.Context) error {
	if h.auth.VerifyPassword(c.FormValue("password")) {
		sessionFrom(c).IsAdmin = true
		return c.Redirect(http.StatusFound, "/admin")
	}

	flash(c, "danger", "Wrong password")
	return render(c, "admin_login.html", nil)
}

// フラグを下ろした時点でアクセスは即失効する。
func (h *AdminHandler) logout(c echo.Context) error {
	sessionFrom(c).IsAdmin = false
	return c.Redirect(http.StatusFound, "/")
}

func (h *AdminHandler) dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.products.ListTop(ctx, 0)
	if err != nil {
		return writeError(c, err)
	}
	orders, err := h.orders.List(ctx)
	if err != nil {
		return writeError(c, err)
	}
	feedbacks, err := h.feedback.List(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return render(c, "admin_dashboard.html", map[string]interface{}{
		"Products":  products,
		"Orders":    orders,
		"Feedbacks": feedbacks,
	})
}

func (h *AdminHandler) productList(c echo.Context) error {
	products, err := h.products.ListTop(c.Request().Context(), 0)
	if err != nil {
		return writeError(c, err)
	}
	return render(c, "admin_products.html", map[string]interface{}{
		"Products": products,
	})
}

func (h *AdminHandler) productForm(c echo.Context) error {
	return render(c, "admin_product_form.html", map[string]interface{}{
		"Product": nil,
	})
}

func (h *AdminHandler) productAdd(c echo.Context) error {
	in, err := productInputFromForm(c)
	if err != nil {
		flash(c, "danger", "Invalid price")
		return c.Redirect(http.StatusFound, "/admin/products/add")
	}

	if _, err := h.products.Create(c.Request().Context(), in); err != nil {
		flash(c, "danger", adminErrorMessage(err))
		return c.Redirect(http.StatusFound, "/admin/products/add")
	}

	flash(c, "success", "Product added")
	return c.Redirect(http.StatusFound, "/admin/products")
}

func (h *AdminHandler) productEditForm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		flash(c, "danger", "Product not found")
		return c.Redirect(http.StatusFound, "/admin/products")
	}

	p, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		flash(c, "danger", "Product not found")
		return c.Redirect(http.StatusFound, "/admin/products")
	}

	return render(c, "admin_product_form.html", map[string]interface{}{
		"Product": p,
	})
}

func (h *AdminHandler) productEdit(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		flash(c, "danger", "Product not found")
		return c.Redirect(http.StatusFound, "/admin/products")
	}

	in, err := productInputFromForm(c)
	if err != nil {
		flash(c, "danger", "Invalid price")
		return c.Redirect(http.StatusFound, "/admin/products/edit/"+c.Param("id"))
	}

	if _, err := h.products.Update(c.Request().Context(), id, in); err != nil {
		flash(c, "danger", adminErrorMessage(err))
		return c.Redirect(http.StatusFound, "/admin/products")
	}

	flash(c, "success", "Product updated")
	return c.Redirect(http.StatusFound, "/admin/products")
}

func (h *AdminHandler) productDelete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err == nil {
		if err := h.products.Delete(c.Request().Context(), id); err != nil {
			flash(c, "danger", adminErrorMessage(err))
			return c.Redirect(http.StatusFound, "/admin/products")
		}
	}

	flash(c, "success", "Product deleted")
	return c.Redirect(http.StatusFound, "/admin/products")
}

func (h *AdminHandler) orderList(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return render(c, "admin_orders.html", map[string]interface{}{
		"Orders": orders,
	})
}

func (h *AdminHandler) orderDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		flash(c, "danger", "Order not found")
		return c.Redirect(http.StatusFound, "/admin/orders")
	}

	out, err := h.orders.Get(c.Request().Context(), id)
	if err != nil {
		flash(c, "danger", "Order not found")
		return c.Redirect(http.StatusFound, "/admin/orders")
	}

	return render(c, "admin_order_detail.html", map[string]interface{}{
		"Order": out,
	})
}

func (h *AdminHandler) orderStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		flash(c, "danger", "Order not found")
		return c.Redirect(http.StatusFound, "/admin/orders")
	}

	if err := h.orders.UpdateStatus(c.Request().Context(), id, c.FormValue("status")); err != nil {
		flash(c, "danger", adminErrorMessage(err))
		return c.Redirect(http.StatusFound, "/admin/orders")
	}

	flash(c, "success", "Status updated")
	return c.Redirect(http.StatusFound, "/admin/orders/"+c.Param("id"))
}

func (h *AdminHandler) feedbackDelete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err == nil {
		if err := h.feedback.Delete(c.Request().Context(), id); err != nil {
			flash(c, "danger", adminErrorMessage(err))
			return c.Redirect(http.StatusFound, "/admin")
		}
	}

	flash(c, "success", "Feedback deleted")
	return c.Redirect(http.StatusFound, "/admin")
}

// 商品フォームの読み取り。価格が数値でなければエラー。
func productInputFromForm(c echo.Context) (usecase.ProductInput, error) {
	priceStr := strings.TrimSpace(c.FormValue("price"))
	if priceStr == "" {
		priceStr = "0"
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return usecase.ProductInput{}, err
	}

	var categoryID *int64
	if v := c.FormValue("category_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			categoryID = &id
		}
	}

	var stock int64
	if v := c.FormValue("stock"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			stock = n
		}
	}

	return usecase.ProductInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       price,
		ImageURL:    c.FormValue("image_url"),
		CategoryID:  categoryID,
		Stock:       stock,
	}, nil
}

// HTML側は内部詳細を見せない。
func adminErrorMessage(err error) string {
	if he, ok := usecase.AsHTTPError(err); ok && he.Status != http.StatusInternalServerError {
		return he.Message
	}
	return "Something went wrong"
}
