package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
	"github.com/warehousehq/warehouse-api/internal/core/ports"
)

type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type listProductsQuery struct {
	Q        string `query:"q"`
	Status   string `query:"status" validate:"omitempty,oneof=active inactive"`
	SKU      string `query:"sku"`
	Category string `query:"category"`
	Brand    string `query:"brand"`
	Page     *int   `query:"page" validate:"omitempty,gte=1"`
	Limit    *int   `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

type paginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type paginatedProductsResponse struct {
	Data []domain.Product `json:"data"`
	Meta paginationMeta   `json:"meta"`
}

type createProductRequest struct {
	SKU            string `json:"sku" validate:"required,min=1,max=64"`
	Barcode        string `json:"barcode" validate:"omitempty,max=64"`
	Name           string `json:"name" validate:"required,min=1,max=128"`
	Category       string `json:"category" validate:"omitempty,max=64"`
	Brand          string `json:"brand" validate:"omitempty,max=64"`
	Quantity       *int   `json:"quantity" validate:"required,gte=0"`
	MinimumStock   int    `json:"minimumStock" validate:"omitempty,gte=0"`
	UnitPriceCents *int   `json:"unitPriceCents" validate:"required,gte=0"`
	ImageURL       string `json:"imageUrl" validate:"omitempty,max=512"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
	Location       string `json:"location" validate:"omitempty,max=64"`
	Notes          string `json:"notes" validate:"omitempty,max=512"`
}

type updateProductRequest struct {
	SKU            *string `json:"sku" validate:"omitempty,min=1,max=64"`
	Barcode        *string `json:"barcode" validate:"omitempty,max=64"`
	Name           *string `json:"name" validate:"omitempty,min=1,max=128"`
	Category       *string `json:"category" validate:"omitempty,max=64"`
	Brand          *string `json:"brand" validate:"omitempty,max=64"`
	Quantity       *int    `json:"quantity" validate:"omitempty,gte=0"`
	MinimumStock   *int    `json:"minimumStock" validate:"omitempty,gte=0"`
	UnitPriceCents *int    `json:"unitPriceCents" validate:"omitempty,gte=0"`
	ImageURL       *string `json:"imageUrl" validate:"omitempty,max=512"`
	Status         *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Location       *string `json:"location" validate:"omitempty,max=64"`
	Notes          *string `json:"notes" validate:"omitempty,max=512"`
}

// List returns a filtered, paginated catalog view.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        q       query  string  false  "Free-text search over name, sku, barcode, category, brand"
// @Param        status  query  string  false  "active or inactive"
// @Param        page    query  int     false  "Page number (1-based)"
// @Param        limit   query  int     false  "Page size (max 100)"
// @Success      200  {object}  paginatedProductsResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var q listProductsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filters := ports.ProductFilters{
		Query:    q.Q,
		SKU:      q.SKU,
		Category: q.Category,
		Brand:    q.Brand,
		Status:   domain.ProductStatus(q.Status),
	}
	if q.Page != nil {
		filters.Page = *q.Page
	}
	if q.Limit != nil {
		filters.Limit = *q.Limit
	}

	page, err := h.products.List(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, paginatedProductsResponse{
		Data: page.Items,
		Meta: paginationMeta{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	})
}

// Get returns a single product by id.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id := c.Param("id")
	product, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		return productError(err, id)
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product to the catalog.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Create(c.Request().Context(), ports.CreateProductInput{
		SKU:            req.SKU,
		Barcode:        req.Barcode,
		Name:           req.Name,
		Category:       req.Category,
		Brand:          req.Brand,
		Quantity:       *req.Quantity,
		MinimumStock:   req.MinimumStock,
		UnitPriceCents: *req.UnitPriceCents,
		ImageURL:       req.ImageURL,
		Status:         domain.ProductStatus(req.Status),
		Location:       req.Location,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Update applies a partial update to a product.
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Update(c.Request().Context(), id, toPatch(req))
	if err != nil {
		return productError(err, id)
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product from the catalog.
//
// @Summary      Delete product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return productError(err, id)
	}
	return c.NoContent(http.StatusNoContent)
}

func toPatch(req updateProductRequest) ports.ProductPatch {
	patch := ports.ProductPatch{
		SKU:            req.SKU,
		Barcode:        req.Barcode,
		Name:           req.Name,
		Category:       req.Category,
		Brand:          req.Brand,
		Quantity:       req.Quantity,
		MinimumStock:   req.MinimumStock,
		UnitPriceCents: req.UnitPriceCents,
		ImageURL:       req.ImageURL,
		Location:       req.Location,
		Notes:          req.Notes,
	}
	if req.Status != nil {
		status := domain.ProductStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}

// productError keeps the product id in the not-found message; everything
// else flows to the central error handler untouched.
func productError(err error, id string) error {
	if errors.Is(err, domain.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product %s not found", id))
	}
	return err
}
