package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/products のJSONミラー
type APIProductHandler struct {
	products *usecase.ProductUsecase
}

// DI
func NewAPIProductHandler(products *usecase.ProductUsecase) *APIProductHandler {
	return &APIProductHandler{products: products}
}

func (h *APIProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/products")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    string   `json:"image_url"`
	CategoryID  *int64   `json:"category_id"`
	Stock       int64    `json:"stock"`
}

// PUTは部分更新。省略した項目は今の値を使う。
type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url"`
	CategoryID  *int64   `json:"category_id"`
	Stock       *int64   `json:"stock"`
}

func (h *APIProductHandler) list(c echo.Context) error {
	products, err := h.products.ListTop(c.Request().Context(), 0)
	if err != nil {
		return writeAPIError(c, err)
	}

	return apiOK(c, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

func (h *APIProductHandler) get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}

	p, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		return writeAPIError(c, err)
	}
	return apiOK(c, http.StatusOK, p)
}

func (h *APIProductHandler) create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	p, err := h.products.Create(c.Request().Context(), usecase.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Stock:       req.Stock,
	})
	if err != nil {
		return writeAPIError(c, err)
	}
	return apiOK(c, http.StatusCreated, p)
}

func (h *APIProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	//今の値に上書きしてから全項目更新
	current, err := h.products.Get(ctx, id)
	if err != nil {
		return writeAPIError(c, err)
	}

	in := usecase.ProductInput{
		Title:       current.Title,
		Description: current.Description,
		Price:       current.Price,
		ImageURL:    current.ImageURL,
		CategoryID:  current.CategoryID,
		Stock:       current.Stock,
	}
	if req.Title != nil {
		in.Title = *req.Title
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Price != nil {
		in.Price = *req.Price
	}
	if req.ImageURL != nil {
		in.ImageURL = *req.ImageURL
	}
	if req.CategoryID != nil {
		in.CategoryID = req.CategoryID
	}
	if req.Stock != nil {
		in.Stock = *req.Stock
	}

	p, err := h.products.Update(ctx, id, in)
	if err != nil {
		return writeAPIError(c, err)
	}
	return apiOK(c, http.StatusOK, p)
}

func (h *APIProductHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid id")
	}

	ctx := c.Request().Context()

	//APIは存在しないIDを404で返す（ストア自体の削除は冪等）
	if _, err := h.products.Get(ctx, id); err != nil {
		return writeAPIError(c, err)
	}

	if err := h.products.Delete(ctx, id); err != nil {
		return writeAPIError(c, err)
	}
	return apiOK(c, http.StatusOK, map[string]interface{}{"id": id})
}
