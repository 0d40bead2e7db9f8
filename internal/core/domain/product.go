package domain

import (
	"errors"
	"time"
)

// ProductStatus represents the catalog visibility of a product.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

var ErrProductNotFound = errors.New("product not found")
var ErrEmptyProductPatch = errors.New("at least one field is required")

// Product is a catalog entry. Prices are integer cents to avoid float drift.
type Product struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	SKU            string        `json:"sku" bson:"sku"`
	Barcode        string        `json:"barcode,omitempty" bson:"barcode,omitempty"`
	Name           string        `json:"name" bson:"name"`
	Category       string        `json:"category,omitempty" bson:"category,omitempty"`
	Brand          string        `json:"brand,omitempty" bson:"brand,omitempty"`
	Quantity       int           `json:"quantity" bson:"quantity"`
	MinimumStock   int           `json:"minimumStock,omitempty" bson:"minimum_stock,omitempty"`
	UnitPriceCents int           `json:"unitPriceCents" bson:"unit_price_cents"`
	ImageURL       string        `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Status         ProductStatus `json:"status" bson:"status"`
	Location       string        `json:"location,omitempty" bson:"location,omitempty"`
	Notes          string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updated_at"`
}

// IsValidProductStatus reports whether s is one of the known statuses.
func IsValidProductStatus(s ProductStatus) bool {
	return s == ProductActive || s == ProductInactive
}
