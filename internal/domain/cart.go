package domain

import (
	"time"

	"golang.org/x/text/currency"
)

type Cart struct {
	Items []CartItem
	Total Money
}

type CartItem struct {
	ID        string
	ProductID string
	Name      string
	// Price is copied from the catalog when the line is created and never refreshed.
	Price Money
	Qty   int

	CreatedAt time.Time
}

func (i CartItem) Subtotal() Money {
	return i.Price.Mul(i.Qty)
}

// TotalOf computes the sum of price*qty over items.
func TotalOf(items []CartItem, cur currency.Unit) Money {
	total := ZeroMoney(cur)
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
