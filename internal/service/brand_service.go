package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"market-catalog/internal/domain"
	"market-catalog/internal/repository"
	"market-catalog/internal/schema"

	"github.com/google/uuid"
)

var (
	ErrBrandEmailExists = errors.New("brand with this email already exists")
)

// BrandService defines the interface for brand business logic
type BrandService interface {
	Create(ctx context.Context, input *schema.BrandInput) (*domain.Brand, error)
	GetByID(ctx context.Context, brandID string) (*domain.Brand, error)
	List(ctx context.Context) ([]*domain.Brand, error)
	Update(ctx context.Context, brandID string, patch *schema.BrandPatch) (*domain.Brand, error)
	Delete(ctx context.Context, brandID string) error
}

type brandService struct {
	brandRepo repository.BrandRepository
}

// NewBrandService creates a new instance of BrandService
func NewBrandService(brandRepo repository.BrandRepository) BrandService {
	return &brandService{brandRepo: brandRepo}
}

// Create stamps a new brand and persists it. The duplicate-email check is
// a best-effort precheck, not an atomic guarantee: two concurrent creates
// with the same email can both pass it.
func (s *brandService) Create(ctx context.Context, input *schema.BrandInput) (*domain.Brand, error) {
	existing, err := s.brandRepo.FindByEmail(ctx, input.Email)
	if err != nil && err != repository.ErrBrandNotFound {
		return nil, fmt.Errorf("failed to check existing brand: %w", err)
	}
	if existing != nil {
		return nil, ErrBrandEmailExists
	}

	brand := input.ToBrand()
	brand.BrandID = uuid.New().String()
	brand.CreatedAt = time.Now().UTC()
	brand.UpdatedAt = brand.CreatedAt
	if brand.VerificationStatus == "" {
		brand.VerificationStatus = domain.VerificationPending
	}
	if brand.Documents == nil {
		brand.Documents = []string{}
	}

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return brand, nil
}

// GetByID retrieves a brand by identifier
func (s *brandService) GetByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	return s.brandRepo.FindByID(ctx, brandID)
}

// List retrieves all brands
func (s *brandService) List(ctx context.Context) ([]*domain.Brand, error) {
	return s.brandRepo.List(ctx)
}

// Update applies a partial update and returns the updated brand
func (s *brandService) Update(ctx context.Context, brandID string, patch *schema.BrandPatch) (*domain.Brand, error) {
	return s.brandRepo.Update(ctx, brandID, patch)
}

// Delete removes a brand. Products of the brand are left untouched.
func (s *brandService) Delete(ctx context.Context, brandID string) error {
	return s.brandRepo.Delete(ctx, brandID)
}
