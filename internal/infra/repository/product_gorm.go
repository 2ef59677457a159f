package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新（全項目置き換え）
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"image_url":   p.ImageURL,
		"category_id": p.CategoryID,
		"stock":       p.Stock,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除。既存の注文明細は消さない（履歴はそのまま残る）。
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 新しい順の一覧
func (r *ProductGormRepository) List(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	tx := r.db.WithContext(ctx).Order("id desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 検索/カテゴリ/価格帯/ソート付きの一覧。フィルタは全てAND。
func (r *ProductGormRepository) Search(ctx context.Context, q repo.ProductSearchQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	// q はタイトルと説明の部分一致（大文字小文字を区別しない）
	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(q.Q)) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if q.CategoryID != nil {
		tx = tx.Where("category_id = ?", *q.CategoryID)
	}

	//価格帯
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}

	tx = tx.Order(orderClause(q.SortField, q.SortOrder))

	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 平均評価の書き戻し
func (r *ProductGormRepository) UpdateRating(ctx context.Context, productID int64, rating float64) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Update("rating", rating)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ソートは許可リスト方式。外れた値は id desc に落とす（SQLに混ぜない）。
func orderClause(field string, order string) string {
	switch field {
	case "id", "title", "price", "rating", "created_at":
		// OK
	default:
		return "id desc"
	}

	switch strings.ToLower(order) {
	case "asc":
		return field + " asc"
	case "desc":
		return field + " desc"
	default:
		return "id desc"
	}
}
