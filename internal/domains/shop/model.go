package shop

import (
	"time"

	"github.com/google/uuid"
)

// Categories is the closed set of product kinds sold in the shop.
var Categories = []string{
	"Journal",
	"Course",
	"Ebook",
	"Template",
	"Preset",
	"Other",
}

// Product is a shop item. Price is stored in whole naira. Inactive
// products stay editable in the admin panel but never show on the
// public shop page.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       int64
	Category    string
	ImageURL    string
	Active      bool
	CreatedAt   time.Time
}
