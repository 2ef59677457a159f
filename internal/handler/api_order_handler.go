package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/orders のJSONミラー
type APIOrderHandler struct {
	orders *usecase.OrderUsecase
}

// DI
func NewAPIOrderHandler(orders *usecase.OrderUsecase) *APIOrderHandler {
	return &APIOrderHandler{orders: orders}
}

func (h *APIOrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
}

type CreateOrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerName  string                   `json:"customer_name" validate:"required"`
	CustomerEmail string                   `json:"customer_email"`
	Items         []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *APIOrderHandler) list(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err)
	}

	return apiOK(c, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// 明細付き。消えた商品のタイトルは null。
func (h *APIOrderHandler) get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}

	out, err := h.orders.Get(c.Request().Context(), id)
	if err != nil {
		return writeAPIError(c, err)
	}
	return apiOK(c, http.StatusOK, out)
}

// セッションカートを介さず、明細リストから直接注文を作る。
func (h *APIOrderHandler) create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	items := make([]usecase.APIOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.APIOrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	out, err := h.orders.CreateFromItems(c.Request().Context(), usecase.APIOrderInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
	})
	if err != nil {
		return writeAPIError(c, err)
	}
	return apiOK(c, http.StatusCreated, out)
}
