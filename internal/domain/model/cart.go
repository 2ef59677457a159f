package model

import (
	"sort"
	"strconv"
)

// セッションに保持する買い物かご。キーは商品IDの文字列、値は数量。
// 数量0のエントリは持たない（削除はキーごと消す）。
type Cart map[string]int64

func NewCart() Cart {
	return Cart{}
}

// 同じ商品は数量を加算する。
func (c Cart) Add(productID int64, qty int64) {
	key := strconv.FormatInt(productID, 10)
	c[key] = c[key] + qty
}

// 無ければ何もしない。
func (c Cart) Remove(productID int64) {
	delete(c, strconv.FormatInt(productID, 10))
}

func (c Cart) Quantity(productID int64) int64 {
	return c[strconv.FormatInt(productID, 10)]
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func (c Cart) Clear() {
	for k := range c {
		delete(c, k)
	}
}

// ID昇順で返す（mapの順序に依存しないため）。
func (c Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c))
	for k := range c {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
