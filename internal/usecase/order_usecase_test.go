package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderFixture() (*usecase.OrderUsecase, *fakeTxRepos) {
	repos := &fakeTxRepos{
		orders:     new(OrderRepoMock),
		orderItems: new(OrderItemRepoMock),
		products:   new(ProductRepoMock),
	}
	return usecase.NewOrderUsecase(&fakeTxManager{repos: repos}), repos
}

func TestOrderUsecase_Checkout_EmptyCartRefused(t *testing.T) {
	uc, repos := newOrderFixture()

	_, err := uc.Checkout(context.Background(), model.NewCart(), usecase.CheckoutInput{CustomerName: "Alice"})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	//注文は一切作られない
	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repos.orderItems.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_Checkout_CapturesPricesAndClearsCart(t *testing.T) {
	ctx := context.Background()
	uc, repos := newOrderFixture()

	cart := model.NewCart()
	cart.Add(1, 2) // 19.99 x2
	cart.Add(2, 1) // 49.99 x1

	repos.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Title: "Tee", Price: 19.99}, nil)
	repos.products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2, Title: "Pants", Price: 49.99}, nil)

	repos.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Status == model.OrderStatusNew &&
			o.CustomerName == "Alice" &&
			o.Total > 89.9699 && o.Total < 89.9701
	})).Return(int64(10), nil)

	repos.orderItems.On("CreateBulk", mock.Anything, int64(10), mock.MatchedBy(func(items []model.OrderItem) bool {
		if len(items) != 2 {
			return false
		}
		//注文時点の価格をそのまま保存する
		return items[0].ProductID == 1 && items[0].Quantity == 2 && items[0].Price == 19.99 &&
			items[1].ProductID == 2 && items[1].Quantity == 1 && items[1].Price == 49.99
	})).Return(nil)

	repos.orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID: 10, CustomerName: "Alice", Status: model.OrderStatusNew, Total: 89.97,
	}, nil)

	out, err := uc.Checkout(ctx, cart, usecase.CheckoutInput{CustomerName: "Alice", CustomerEmail: "a@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.Equal(t, "new", out.Status)
	assert.InDelta(t, 89.97, out.Total, 1e-9)

	//成功したらカートは空
	assert.True(t, cart.IsEmpty())

	repos.orders.AssertExpectations(t)
	repos.orderItems.AssertExpectations(t)
}

func TestOrderUsecase_Checkout_SkipsVanishedProducts(t *testing.T) {
	ctx := context.Background()
	uc, repos := newOrderFixture()

	cart := model.NewCart()
	cart.Add(1, 2)
	cart.Add(2, 1)

	repos.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Price: 19.99}, nil)
	//商品2は削除済み。チェックアウト全体は失敗しない。
	repos.products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{}, repo.ErrNotFound)

	repos.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Total > 39.9799 && o.Total < 39.9801
	})).Return(int64(11), nil)
	repos.orderItems.On("CreateBulk", mock.Anything, int64(11), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 1 && items[0].ProductID == 1
	})).Return(nil)
	repos.orders.On("FindByID", mock.Anything, int64(11)).Return(model.Order{ID: 11, Total: 39.98}, nil)

	out, err := uc.Checkout(ctx, cart, usecase.CheckoutInput{CustomerName: "Alice"})
	assert.NoError(t, err)
	assert.Equal(t, int64(11), out.ID)
}

func TestOrderUsecase_Checkout_FailedItemsKeepCart(t *testing.T) {
	ctx := context.Background()
	uc, repos := newOrderFixture()

	cart := model.NewCart()
	cart.Add(1, 1)

	repos.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Price: 19.99}, nil)
	repos.orders.On("Create", mock.Anything, mock.Anything).Return(int64(12), nil)
	repos.orderItems.On("CreateBulk", mock.Anything, int64(12), mock.Anything).Return(assert.AnError)

	_, err := uc.Checkout(ctx, cart, usecase.CheckoutInput{CustomerName: "Alice"})
	assertHTTPStatus(t, err, http.StatusInternalServerError)

	//失敗時はカートを消さない
	assert.False(t, cart.IsEmpty())
}

func TestOrderUsecase_CreateFromItems_UnknownProduct(t *testing.T) {
	uc, repos := newOrderFixture()

	repos.products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.CreateFromItems(context.Background(), usecase.APIOrderInput{
		CustomerName: "Bob",
		Items:        []usecase.APIOrderItemInput{{ProductID: 99, Quantity: 1}},
	})
	assertHTTPStatus(t, err, http.StatusNotFound)
	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_CreateFromItems_InvalidQuantity(t *testing.T) {
	uc, _ := newOrderFixture()

	_, err := uc.CreateFromItems(context.Background(), usecase.APIOrderInput{
		CustomerName: "Bob",
		Items:        []usecase.APIOrderItemInput{{ProductID: 1, Quantity: 0}},
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_Get_NullCoalescesDeletedProduct(t *testing.T) {
	uc, repos := newOrderFixture()

	repos.orders.On("FindByID", mock.Anything, int64(5)).Return(model.Order{ID: 5, Total: 19.99}, nil)
	repos.orderItems.On("ListDetailByOrderID", mock.Anything, int64(5)).Return([]repo.OrderItemDetail{
		{OrderItem: model.OrderItem{ID: 1, OrderID: 5, ProductID: 77, Quantity: 1, Price: 19.99}, ProductTitle: nil},
	}, nil)

	out, err := uc.Get(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Nil(t, out.Items[0].ProductTitle)
	assert.Equal(t, 19.99, out.Items[0].Price)
}

func TestOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	uc, repos := newOrderFixture()

	repos.orders.On("UpdateStatus", mock.Anything, int64(99), "shipped").Return(repo.ErrNotFound)

	err := uc.UpdateStatus(context.Background(), 99, "shipped")
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestOrderUsecase_UpdateStatus_AcceptsFreeText(t *testing.T) {
	uc, repos := newOrderFixture()

	//ステータスは閉じた集合ではない
	repos.orders.On("UpdateStatus", mock.Anything, int64(1), "waiting for pickup").Return(nil)

	assert.NoError(t, uc.UpdateStatus(context.Background(), 1, "  waiting for pickup  "))
	repos.orders.AssertExpectations(t)
}

func TestOrderUsecase_UpdateStatus_EmptyRejected(t *testing.T) {
	uc, repos := newOrderFixture()

	err := uc.UpdateStatus(context.Background(), 1, "   ")
	assertHTTPStatus(t, err, http.StatusBadRequest)
	repos.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
