package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 店頭（HTML）側のハンドラ
type ShopHandler struct {
	products *usecase.ProductUsecase
}

// DI
func NewShopHandler(products *usecase.ProductUsecase) *ShopHandler {
	return &ShopHandler{products: products}
}

func (h *ShopHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
	e.GET("/shop", h.shop)
	e.GET("/product/:id", h.detail)
	e.POST("/product/:id/review", h.addReview)
}

// トップページは新着N件
func (h *ShopHandler) index(c echo.Context) error {
	products, err := h.products.ListTop(c.Request().Context(), 6)
	if err != nil {
		return writeError(c, err)
	}
	return render(c, "index.html", map[string]interface{}{
		"Products": products,
	})
}

func (h *ShopHandler) shop(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("q")

	var categoryID *int64
	if v := c.QueryParam("category"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			categoryID = &id
		}
	}

	var minPrice *float64
	if v := c.QueryParam("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			minPrice = &f
		}
	}
	var maxPrice *float64
	if v := c.QueryParam("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			maxPrice = &f
		}
	}

	sortField := c.QueryParam("sort")

	categories, err := h.products.Categories(ctx)
	if err != nil {
		return writeError(c, err)
	}

	//フィルタが無ければ新着順の全件
	var list []model.Product
	if query != "" || categoryID != nil || minPrice != nil || maxPrice != nil || sortField != "" {
		list, err = h.products.Search(ctx, usecase.SearchInput{
			Q:          query,
			CategoryID: categoryID,
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			SortField:  sortField,
			SortOrder:  "desc",
		})
	} else {
		list, err = h.products.ListTop(ctx, 0)
	}
	if err != nil {
		return writeError(c, err)
	}

	return render(c, "shop.html", map[string]interface{}{
		"Products":   list,
		"Categories": categories,
		"Query":      query,
	})
}

func (h *ShopHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		flash(c, "danger", "Product not found")
		return c.Redirect(http.StatusFound, "/shop")
	}

	detail, err := h.products.Detail(c.Request().Context(), id)
	if err != nil {
		flash(c, "danger", "Product not found")
		return c.Redirect(http.StatusFound, "/shop")
	}

	return render(c, "product.html", map[string]interface{}{
		"Product": detail.Product,
		"Reviews": detail.Reviews,
		"Rating":  detail.Rating,
	})
}

func (h *ShopHandler) addReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		flash(c, "danger", "Product not found")
		return c.Redirect(http.StatusFound, "/shop")
	}

	rating := 5
	if v := c.FormValue("rating"); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			rating = r
		}
	}

	_, err = h.products.AddReview(c.Request().Context(), id, usecase.ReviewInput{
		CustomerName: c.FormValue("name"),
		Rating:       rating,
		Comment:      c.FormValue("comment"),
	})
	if err != nil {
		if he, ok := usecase.AsHTTPError(err); ok && he.Status == http.StatusBadRequest {
			flash(c, "danger", "Rating must be between 1 and 5")
		} else {
			flash(c, "danger", "Could not add review")
		}
		return c.Redirect(http.StatusFound, "/product/"+c.Param("id"))
	}

	flash(c, "success", "Review added!")
	return c.Redirect(http.StatusFound, "/product/"+c.Param("id"))
}
