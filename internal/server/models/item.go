package models

import "time"

// Item is a catalog entry. Price is in minor currency units.
type Item struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Image       string
	LargeImage  string
	Price       int64
	CreatedAt   time.Time
}
