package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddIsAdditive(t *testing.T) {
	cart := model.NewCart()

	cart.Add(1, 2)
	cart.Add(1, 3)
	cart.Add(2, 1)

	assert.Equal(t, int64(5), cart.Quantity(1))
	assert.Equal(t, int64(1), cart.Quantity(2))
}

func TestCart_QuantityMissingIsZero(t *testing.T) {
	cart := model.NewCart()
	assert.Equal(t, int64(0), cart.Quantity(99))
}

func TestCart_Remove(t *testing.T) {
	cart := model.NewCart()
	cart.Add(1, 2)

	//無いキーの削除は何もしない
	cart.Remove(99)
	assert.Equal(t, int64(2), cart.Quantity(1))

	cart.Remove(1)
	assert.True(t, cart.IsEmpty())
}

func TestCart_Clear(t *testing.T) {
	cart := model.NewCart()
	cart.Add(1, 1)
	cart.Add(2, 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Quantity(1))
}

func TestCart_ProductIDsSorted(t *testing.T) {
	cart := model.NewCart()
	cart.Add(3, 1)
	cart.Add(1, 1)
	cart.Add(2, 1)

	assert.Equal(t, []int64{1, 2, 3}, cart.ProductIDs())
}
