package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	reviewRepo   repo.ReviewRepository
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	reviewRepo repo.ReviewRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

type ProductInput struct {
	Title       string
	Description string
	Price       float64
	ImageURL    string
	CategoryID  *int64
	Stock       int64
}

type SearchInput struct {
	Q          string
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	SortField  string
	SortOrder  string
}

type RatingInfo struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type ProductDetail struct {
	Product model.Product  `json:"product"`
	Reviews []model.Review `json:"reviews"`
	Rating  RatingInfo     `json:"rating"`
}

// トップページ用の新着N件。
func (u *ProductUsecase) ListTop(ctx context.Context, limit int) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) Search(ctx context.Context, in SearchInput) ([]model.Product, error) {
	products, err := u.productRepo.Search(ctx, repo.ProductSearchQuery{
		Q:          in.Q,
		CategoryID: in.CategoryID,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		SortField:  in.SortField,
		SortOrder:  in.SortOrder,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 商品＋レビュー＋平均評価をまとめて返す。
func (u *ProductUsecase) Detail(ctx context.Context, id int64) (ProductDetail, error) {
	p, err := u.Get(ctx, id)
	if err != nil {
		return ProductDetail{}, err
	}

	reviews, err := u.reviewRepo.ListByProductID(ctx, id)
	if err != nil {
		return ProductDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	rating, err := u.Rating(ctx, id)
	if err != nil {
		return ProductDetail{}, err
	}

	return ProductDetail{Product: p, Reviews: reviews, Rating: rating}, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 全項目置き換え。無いIDは404。
func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
	})
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.Get(ctx, id)
}

// 冪等。注文明細は消さない。
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.productRepo.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type ReviewInput struct {
	CustomerName string
	Rating       int
	Comment      string
}

// レビューを追加して平均評価を書き戻す。
func (u *ProductUsecase) AddReview(ctx context.Context, productID int64, in ReviewInput) (model.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	// 商品の存在チェック
	if _, err := u.Get(ctx, productID); err != nil {
		return model.Review{}, err
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		name = "Anonymous"
	}

	review, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID:    productID,
		CustomerName: name,
		Rating:       in.Rating,
		Comment:      in.Comment,
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//平均を再計算して商品に書き戻す
	avg, _, err := u.reviewRepo.Rating(ctx, productID)
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.productRepo.UpdateRating(ctx, productID, avg); err != nil && err != repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return review, nil
}

func (u *ProductUsecase) Rating(ctx context.Context, productID int64) (RatingInfo, error) {
	avg, count, err := u.reviewRepo.Rating(ctx, productID)
	if err != nil {
		return RatingInfo{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return RatingInfo{Average: avg, Count: count}, nil
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be a non-negative number")
	}
	return nil
}
