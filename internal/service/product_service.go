package service

import (
	"context"
	"fmt"
	"time"

	"market-catalog/internal/domain"
	"market-catalog/internal/repository"
	"market-catalog/internal/schema"

	"github.com/google/uuid"
)

// ProductService defines the interface for product business logic
type ProductService interface {
	Create(ctx context.Context, input *schema.ProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
	List(ctx context.Context, page, limit int, sortBy string, sortOrder repository.SortOrder) ([]*domain.Product, error)
	Update(ctx context.Context, productID string, patch *schema.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
	ListByBrand(ctx context.Context, brandID string) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	Recent(ctx context.Context, limit int) ([]*domain.Product, error)
	Search(ctx context.Context, params repository.SearchParams) (*repository.SearchResult, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// Create stamps a new product identifier and timestamps and persists it
func (s *productService) Create(ctx context.Context, input *schema.ProductInput) (*domain.Product, error) {
	product := input.ToProduct()
	product.ProductID = uuid.New().String()
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetByID retrieves a product by identifier
func (s *productService) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, productID)
}

// List retrieves a page of products
func (s *productService) List(ctx context.Context, page, limit int, sortBy string, sortOrder repository.SortOrder) ([]*domain.Product, error) {
	return s.productRepo.List(ctx, page, limit, sortBy, sortOrder)
}

// Update applies a partial update and returns the updated product
func (s *productService) Update(ctx context.Context, productID string, patch *schema.ProductPatch) (*domain.Product, error) {
	return s.productRepo.Update(ctx, productID, patch)
}

// Delete removes a product by identifier
func (s *productService) Delete(ctx context.Context, productID string) error {
	return s.productRepo.Delete(ctx, productID)
}

// ListByBrand retrieves all products of one brand
func (s *productService) ListByBrand(ctx context.Context, brandID string) ([]*domain.Product, error) {
	return s.productRepo.ListByBrand(ctx, brandID)
}

// ListByCategory retrieves all products in one category
func (s *productService) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.productRepo.ListByCategory(ctx, category)
}

// Recent retrieves the newest products
func (s *productService) Recent(ctx context.Context, limit int) ([]*domain.Product, error) {
	return s.productRepo.Recent(ctx, limit)
}

// Search runs a filtered, sorted, paginated product search
func (s *productService) Search(ctx context.Context, params repository.SearchParams) (*repository.SearchResult, error) {
	return s.productRepo.Search(ctx, params)
}
