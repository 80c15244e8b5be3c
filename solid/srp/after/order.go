// Package after splits order handling into three components that change for
// different reasons: Order knows its items and total, OrderSaver persists an
// order, EmailSender notifies a customer. They meet only at Order.Total.
package after

import "github.com/samber/lo"

// Item is one order line.
type Item struct {
	Price    float64 `msgpack:"price"`
	Quantity int     `msgpack:"quantity"`
}

// Subtotal is Price times Quantity.
func (i Item) Subtotal() float64 { return i.Price * float64(i.Quantity) }

// Order only knows its items and how to total them.
type Order struct {
	Items []Item
}

// NewOrder returns an Order holding items.
func NewOrder(items ...Item) Order {
	return Order{Items: items}
}

// Total is the sum of every item's subtotal. An empty order totals 0.
func (o Order) Total() float64 {
	return lo.SumBy(o.Items, Item.Subtotal)
}
