package ports

import (
	"context"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog entry.
type CreateProductInput struct {
	SKU            string
	Barcode        string
	Name           string
	Category       string
	Brand          string
	Quantity       int
	MinimumStock   int
	UnitPriceCents int
	ImageURL       string
	Status         domain.ProductStatus
	Location       string
	Notes          string
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	List(ctx context.Context, filters ProductFilters) (*PaginatedProducts, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
