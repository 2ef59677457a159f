package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart と /checkout のHTTP
type CartHandler struct {
	cart   *usecase.CartUsecase
	orders *usecase.OrderUsecase
}

// DI
func NewCartHandler(cart *usecase.CartUsecase, orders *usecase.OrderUsecase) *CartHandler {
	return &CartHandler{cart: cart, orders: orders}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.view)
	e.POST("/cart/add/:id", h.add)
	e.POST("/cart/remove/:id", h.remove)
	e.GET("/checkout", h.checkoutForm)
	e.POST("/checkout", h.checkout)
}

func (h *CartHandler) view(c echo.Context) error {
	sess := sessionFrom(c)

	view, err := h.cart.View(c.Request().Context(), sess.Cart)
	if err != nil {
		return writeError(c, err)
	}

	return render(c, "cart.html", map[string]interface{}{
		"Items": view.Items,
		"Total": view.Total,
	})
}

func (h *CartHandler) add(c echo.Context) error {
	sess := sessionFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		flash(c, "danger", "Invalid product")
		return c.Redirect(http.StatusFound, "/cart")
	}

	//数量は正の整数。未指定は1。
	qty := int64(1)
	if v := c.FormValue("quantity"); v != "" {
		qty, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			flash(c, "danger", "Invalid quantity")
			return c.Redirect(http.StatusFound, "/cart")
		}
	}

	if err := h.cart.Add(sess.Cart, id, qty); err != nil {
		flash(c, "danger", "Invalid quantity")
		return c.Redirect(http.StatusFound, "/cart")
	}

	flash(c, "success", "Added to cart")
	return c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHandler) remove(c echo.Context) error {
	sess := sessionFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err == nil {
		h.cart.Remove(sess.Cart, id)
	}

	flash(c, "success", "Removed from cart")
	return c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHandler) checkoutForm(c echo.Context) error {
	sess := sessionFrom(c)

	//空カートは一覧に戻す（エラーではなく警告）
	if sess.Cart.IsEmpty() {
		flash(c, "warning", "Your cart is empty")
		return c.Redirect(http.StatusFound, "/shop")
	}

	view, err := h.cart.View(c.Request().Context(), sess.Cart)
	if err != nil {
		return writeError(c, err)
	}

	return render(c, "checkout.html", map[string]interface{}{
		"Items": view.Items,
		"Total": view.Total,
	})
}

func (h *CartHandler) checkout(c echo.Context) error {
	sess := sessionFrom(c)

	if sess.Cart.IsEmpty() {
		flash(c, "warning", "Your cart is empty")
		return c.Redirect(http.StatusFound, "/shop")
	}

	out, err := h.orders.Checkout(c.Request().Context(), sess.Cart, usecase.CheckoutInput{
		CustomerName:  c.FormValue("name"),
		CustomerEmail: c.FormValue("email"),
		CustomerPhone: c.FormValue("phone"),
	})
	if err != nil {
		flash(c, "danger", "Could not place the order, please try again")
		return c.Redirect(http.StatusFound, "/checkout")
	}

	flash(c, "success", fmt.Sprintf("Thank you! Order #%d has been placed. We will call you to confirm.", out.ID))
	return c.Redirect(http.StatusFound, "/shop")
}
