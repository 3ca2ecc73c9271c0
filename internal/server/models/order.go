package models

import "time"

// Order is an immutable record of a completed checkout. Total is the amount
// the payment gateway reported as charged.
type Order struct {
	ID             string
	UserID         string
	Total          int64
	Currency       string
	ChargeID       string
	IdempotencyKey string
	Items          []OrderItem
	CreatedAt      time.Time
}

// OrderItem is a copy of an item's fields at purchase time. SourceItemID is
// informational; the item may since have changed or been deleted.
type OrderItem struct {
	ID           string
	SourceItemID string
	Title        string
	Description  string
	Image        string
	LargeImage   string
	Price        int64
	Quantity     int64
}

// OrderItemFromLine copies a snapshot line into an order item.
func OrderItemFromLine(l CartLine) OrderItem {
	return OrderItem{
		SourceItemID: l.Item.ID,
		Title:        l.Item.Title,
		Description:  l.Item.Description,
		Image:        l.Item.Image,
		LargeImage:   l.Item.LargeImage,
		Price:        l.Item.Price,
		Quantity:     l.Quantity,
	}
}
