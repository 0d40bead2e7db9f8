package ports

import (
	"context"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
)

// ProductFilters narrows a catalog listing. Zero values mean "no filter";
// text filters are case-insensitive substring matches.
type ProductFilters struct {
	Query    string
	SKU      string
	Category string
	Brand    string
	Status   domain.ProductStatus
	Page     int
	Limit    int
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	SKU            *string
	Barcode        *string
	Name           *string
	Category       *string
	Brand          *string
	Quantity       *int
	MinimumStock   *int
	UnitPriceCents *int
	ImageURL       *string
	Status         *domain.ProductStatus
	Location       *string
	Notes          *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.SKU == nil && p.Barcode == nil && p.Name == nil && p.Category == nil &&
		p.Brand == nil && p.Quantity == nil && p.MinimumStock == nil &&
		p.UnitPriceCents == nil && p.ImageURL == nil && p.Status == nil &&
		p.Location == nil && p.Notes == nil
}

// PaginatedProducts is one page of catalog results plus paging metadata.
type PaginatedProducts struct {
	Items      []domain.Product
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// ProductRepository persists catalog entries.
type ProductRepository interface {
	FindAll(ctx context.Context, filters ProductFilters) (*PaginatedProducts, error)
	// FindByID returns domain.ErrProductNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	// Update returns domain.ErrProductNotFound when absent.
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	// Delete returns domain.ErrProductNotFound when absent.
	Delete(ctx context.Context, id string) error
}
