package models

import "time"

// CartItem is one (user, item) line of a cart. Quantity is at least 1.
type CartItem struct {
	ID        string
	UserID    string
	ItemID    string
	Quantity  int64
	CreatedAt time.Time
}

// CartLine is a point-in-time view of a cart row joined with the item it
// refers to. A checkout snapshot is a slice of CartLine.
type CartLine struct {
	CartItemID string
	Quantity   int64
	Item       Item
}

// LineTotal is price times quantity in minor units.
func (l CartLine) LineTotal() int64 {
	return l.Item.Price * l.Quantity
}

// CartTotal sums line totals in integer minor units.
func CartTotal(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}
