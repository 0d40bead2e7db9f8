package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
	"github.com/warehousehq/warehouse-api/internal/core/ports"
)

// ProductService implements catalog use cases on top of a repository.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context, filters ports.ProductFilters) (*ports.PaginatedProducts, error) {
	return s.repo.FindAll(ctx, filters)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	status := input.Status
	if status == "" {
		status = domain.ProductActive
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:             uuid.NewString(),
		SKU:            input.SKU,
		Barcode:        input.Barcode,
		Name:           input.Name,
		Category:       input.Category,
		Brand:          input.Brand,
		Quantity:       input.Quantity,
		MinimumStock:   input.MinimumStock,
		UnitPriceCents: input.UnitPriceCents,
		ImageURL:       input.ImageURL,
		Status:         status,
		Location:       input.Location,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyProductPatch
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
