package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CheckoutInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type OrderItemOutput struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	//商品が消えていると nil
	ProductTitle *string `json:"product_title"`
	Quantity     int64   `json:"quantity"`
	Price        float64 `json:"price"`
}

type OrderOutput struct {
	ID            int64             `json:"id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CustomerPhone string            `json:"customer_phone,omitempty"`
	Status        string            `json:"status"`
	Total         float64           `json:"total"`
	CreatedAt     time.Time         `json:"created_at"`
	Items         []OrderItemOutput `json:"items,omitempty"`
}

// Checkout はカートを注文に変換する。
// 空カートは拒否。消えた商品はスキップ。注文＋明細は1トランザクション。
// 成功したらカートを空にする。
func (u *OrderUsecase) Checkout(ctx context.Context, cart model.Cart, in CheckoutInput) (OrderOutput, error) {
	if cart.IsEmpty() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		name = "Customer"
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//現在価格を読み直して合計とスナップショットを作る
		orderItems := make([]model.OrderItem, 0, len(cart))
		var total float64

		for _, id := range cart.ProductIDs() {
			p, err := r.Products().FindByID(ctx, id)
			if err == repo.ErrNotFound {
				//消えた商品はスキップ（チェックアウト全体は失敗させない）
				continue
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			qty := cart.Quantity(id)
			orderItems = append(orderItems, model.OrderItem{
				ProductID: id,
				Quantity:  qty,
				Price:     p.Price,
			})
			total += p.Price * float64(qty)
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerName:  name,
			CustomerEmail: strings.TrimSpace(in.CustomerEmail),
			CustomerPhone: strings.TrimSpace(in.CustomerPhone),
			Status:        model.OrderStatusNew,
			Total:         total,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(o, nil)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	cart.Clear()
	return out, nil
}

type APIOrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type APIOrderInput struct {
	CustomerName  string
	CustomerEmail string
	Items         []APIOrderItemInput
}

// CreateFromItems はAPI用。セッションカートを介さず明細リストから注文を作る。
// 各商品は存在必須（404）、数量は正の整数。
func (u *OrderUsecase) CreateFromItems(ctx context.Context, in APIOrderInput) (OrderOutput, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "customer_name is required")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "items must be a non-empty list")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		var total float64

		for _, item := range in.Items {
			if item.Quantity <= 0 {
				return NewHTTPError(http.StatusBadRequest, "quantity must be greater than 0")
			}

			p, err := r.Products().FindByID(ctx, item.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %d not found", item.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     p.Price,
			})
			total += p.Price * float64(item.Quantity)
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerName:  strings.TrimSpace(in.CustomerName),
			CustomerEmail: strings.TrimSpace(in.CustomerEmail),
			Status:        model.OrderStatusNew,
			Total:         total,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(o, nil)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) List(ctx context.Context) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			outs = append(outs, toOrderOutput(o, nil))
		}
		return nil
	})
	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// 明細付きの注文。消えた商品のタイトルは nil のまま返す。
func (u *OrderUsecase) Get(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		details, err := r.OrderItems().ListDetailByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, details)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ステータスは自由入力（空だけ拒否）。遷移表は持たない。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return NewHTTPError(http.StatusBadRequest, "status is required")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		err := r.Orders().UpdateStatus(ctx, orderID, status)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func toOrderOutput(o model.Order, details []repo.OrderItemDetail) OrderOutput {
	items := make([]OrderItemOutput, 0, len(details))
	for _, d := range details {
		items = append(items, OrderItemOutput{
			ID:           d.ID,
			ProductID:    d.ProductID,
			ProductTitle: d.ProductTitle,
			Quantity:     d.Quantity,
			Price:        d.Price,
		})
	}

	return OrderOutput{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Status:        o.Status,
		Total:         o.Total,
		CreatedAt:     o.CreatedAt,
		Items:         items,
	}
}
