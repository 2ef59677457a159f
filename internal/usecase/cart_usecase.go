package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase はセッションから渡されたカート値に対する業務ロジック。
// カート自体はセッション側が持ち、ここでは状態を持たない。
type CartUsecase struct {
	productRepo repo.ProductRepository
}

func NewCartUsecase(productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{productRepo: productRepo}
}

type CartLine struct {
	Product  model.Product `json:"product"`
	Quantity int64         `json:"quantity"`
	Subtotal float64       `json:"subtotal"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// 同じ商品は数量を加算する。
func (u *CartUsecase) Add(cart model.Cart, productID int64, qty int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if qty < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	cart.Add(productID, qty)
	return nil
}

// 無ければ何もしない。
func (u *CartUsecase) Remove(cart model.Cart, productID int64) {
	cart.Remove(productID)
}

// カタログと突き合わせたカートの中身。
// カタログから消えた商品は黙って落とす（エラーにしない）。
func (u *CartUsecase) View(ctx context.Context, cart model.Cart) (CartView, error) {
	items := make([]CartLine, 0, len(cart))
	var total float64

	for _, id := range cart.ProductIDs() {
		p, err := u.productRepo.FindByID(ctx, id)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		qty := cart.Quantity(id)
		subtotal := p.Price * float64(qty)
		items = append(items, CartLine{Product: p, Quantity: qty, Subtotal: subtotal})
		total += subtotal
	}

	return CartView{Items: items, Total: total}, nil
}
