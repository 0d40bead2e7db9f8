package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
	"github.com/warehousehq/warehouse-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// ProductStore is an in-memory catalog repository safe for concurrent use.
type ProductStore struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[string]domain.Product)}
}

// Seed inserts demo rows, ignoring ids already present. Intended for
// development startup only.
func (s *ProductStore) Seed(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		if _, exists := s.products[p.ID]; !exists {
			s.products[p.ID] = p
		}
	}
}

func (s *ProductStore) FindAll(_ context.Context, filters ports.ProductFilters) (*ports.PaginatedProducts, error) {
	page := filters.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filters.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	s.mu.RLock()
	matched := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if matchesFilters(p, filters) {
			matched = append(matched, p)
		}
	}
	s.mu.RUnlock()

	// Map iteration order is random; sort for stable pagination.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return &ports.PaginatedProducts{
		Items:      matched[offset:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *ProductStore) FindByID(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (s *ProductStore) Create(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = *product
	return nil
}

func (s *ProductStore) Update(_ context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	applyPatch(&current, patch)
	current.UpdatedAt = time.Now().UTC()
	s.products[id] = current

	updated := current
	return &updated, nil
}

func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func applyPatch(p *domain.Product, patch ports.ProductPatch) {
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Barcode != nil {
		p.Barcode = *patch.Barcode
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.MinimumStock != nil {
		p.MinimumStock = *patch.MinimumStock
	}
	if patch.UnitPriceCents != nil {
		p.UnitPriceCents = *patch.UnitPriceCents
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
}

func matchesFilters(p domain.Product, f ports.ProductFilters) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !containsFold(p.Name, q) && !containsFold(p.SKU, q) &&
			!containsFold(p.Barcode, q) && !containsFold(p.Category, q) &&
			!containsFold(p.Brand, q) {
			return false
		}
	}
	if sku := strings.ToLower(strings.TrimSpace(f.SKU)); sku != "" && !containsFold(p.SKU, sku) {
		return false
	}
	if cat := strings.ToLower(strings.TrimSpace(f.Category)); cat != "" && !containsFold(p.Category, cat) {
		return false
	}
	if brand := strings.ToLower(strings.TrimSpace(f.Brand)); brand != "" && !containsFold(p.Brand, brand) {
		return false
	}
	return true
}

// containsFold reports whether haystack contains the already-lowered needle.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
