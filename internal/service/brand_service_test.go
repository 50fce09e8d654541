package service

import (
	"context"
	"fmt"
	"testing"

	"market-catalog/internal/domain"
	"market-catalog/internal/repository"
	"market-catalog/internal/schema"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Mock repositories for testing
type mockBrandRepository struct {
	brands      map[string]*domain.Brand
	createCalls int
}

func newMockBrandRepository() *mockBrandRepository {
	return &mockBrandRepository{
		brands: make(map[string]*domain.Brand),
	}
}

func (m *mockBrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	m.createCalls++
	m.brands[brand.BrandID] = brand
	return nil
}

func (m *mockBrandRepository) FindByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	brand, exists := m.brands[brandID]
	if !exists {
		return nil, repository.ErrBrandNotFound
	}
	return brand, nil
}

func (m *mockBrandRepository) FindByEmail(ctx context.Context, email string) (*domain.Brand, error) {
	for _, brand := range m.brands {
		if brand.Email == email {
			return brand, nil
		}
	}
	return nil, repository.ErrBrandNotFound
}

func (m *mockBrandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	brands := []*domain.Brand{}
	for _, brand := range m.brands {
		brands = append(brands, brand)
	}
	return brands, nil
}

func (m *mockBrandRepository) Update(ctx context.Context, brandID string, patch *schema.BrandPatch) (*domain.Brand, error) {
	brand, exists := m.brands[brandID]
	if !exists {
		return nil, repository.ErrBrandNotFound
	}
	if patch.BrandName != nil {
		brand.BrandName = *patch.BrandName
	}
	if patch.Email != nil {
		brand.Email = *patch.Email
	}
	return brand, nil
}

func (m *mockBrandRepository) Delete(ctx context.Context, brandID string) error {
	if _, exists := m.brands[brandID]; !exists {
		return repository.ErrBrandNotFound
	}
	delete(m.brands, brandID)
	return nil
}

// Feature: brand registration stamps server-generated fields
func TestProperty_BrandCreationStampsGeneratedFields(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("created brands get an ID, timestamps and a Pending status", prop.ForAll(
		func(name string, email string, phone string) bool {
			brandRepo := newMockBrandRepository()
			service := NewBrandService(brandRepo)
			ctx := context.Background()

			brand, err := service.Create(ctx, &schema.BrandInput{
				BrandName:   name,
				Email:       email,
				PhoneNumber: phone,
			})
			if err != nil {
				t.Logf("FAIL: Create failed: %v", err)
				return false
			}

			if brand.BrandID == "" {
				t.Logf("FAIL: BrandID not generated")
				return false
			}

			if brand.CreatedAt.IsZero() || brand.UpdatedAt.IsZero() {
				t.Logf("FAIL: timestamps not stamped")
				return false
			}

			if !brand.CreatedAt.Equal(brand.UpdatedAt) {
				t.Logf("FAIL: CreatedAt and UpdatedAt differ on creation")
				return false
			}

			if brand.VerificationStatus != domain.VerificationPending {
				t.Logf("FAIL: Expected Pending status, got %s", brand.VerificationStatus)
				return false
			}

			if brand.Documents == nil {
				t.Logf("FAIL: Documents should default to an empty list, not nil")
				return false
			}

			// Verify the stored brand matches the returned one
			stored, err := brandRepo.FindByID(ctx, brand.BrandID)
			if err != nil {
				t.Logf("FAIL: Created brand not stored: %v", err)
				return false
			}

			if stored.Email != email {
				t.Logf("FAIL: Stored email mismatch. Expected %s, got %s", email, stored.Email)
				return false
			}

			return true
		},
		gen.RegexMatch(`[A-Z][a-z]{2,20} [A-Z][a-z]{2,20}`),
		gen.RegexMatch(`[a-z]{3,10}@[a-z]{3,8}\.(com|org|net)`),
		gen.RegexMatch(`[0-9]{10,15}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: generated brand identifiers are unique
func TestProperty_BrandIdentifiersAreUnique(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("repeated creates never produce a duplicate identifier", prop.ForAll(
		func(count int) bool {
			brandRepo := newMockBrandRepository()
			service := NewBrandService(brandRepo)
			ctx := context.Background()

			seen := make(map[string]bool)
			for i := 0; i < count; i++ {
				brand, err := service.Create(ctx, &schema.BrandInput{
					BrandName:   "Brand",
					Email:       fmt.Sprintf("brand%d@example.com", i),
					PhoneNumber: "01234567890",
				})
				if err != nil {
					t.Logf("FAIL: Create failed: %v", err)
					return false
				}
				if seen[brand.BrandID] {
					t.Logf("FAIL: Duplicate BrandID %s", brand.BrandID)
					return false
				}
				seen[brand.BrandID] = true
			}

			return true
		},
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBrandCreateRejectsDuplicateEmail(t *testing.T) {
	brandRepo := newMockBrandRepository()
	service := NewBrandService(brandRepo)
	ctx := context.Background()

	input := &schema.BrandInput{
		BrandName:   "First Brand",
		Email:       "shared@example.com",
		PhoneNumber: "01234567890",
	}

	if _, err := service.Create(ctx, input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := service.Create(ctx, &schema.BrandInput{
		BrandName:   "Second Brand",
		Email:       "shared@example.com",
		PhoneNumber: "09876543210",
	})
	if err != ErrBrandEmailExists {
		t.Fatalf("expected ErrBrandEmailExists, got %v", err)
	}

	if brandRepo.createCalls != 1 {
		t.Errorf("expected 1 repository create call, got %d", brandRepo.createCalls)
	}
}

func TestBrandCreateKeepsSuppliedVerificationStatus(t *testing.T) {
	brandRepo := newMockBrandRepository()
	service := NewBrandService(brandRepo)

	brand, err := service.Create(context.Background(), &schema.BrandInput{
		BrandName:          "Verified Brand",
		Email:              "verified@example.com",
		PhoneNumber:        "01234567890",
		VerificationStatus: domain.VerificationVerified,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if brand.VerificationStatus != domain.VerificationVerified {
		t.Errorf("supplied status overwritten: got %s", brand.VerificationStatus)
	}
}

func TestBrandDeletePassesThroughNotFound(t *testing.T) {
	service := NewBrandService(newMockBrandRepository())

	if err := service.Delete(context.Background(), "missing"); err != repository.ErrBrandNotFound {
		t.Errorf("expected ErrBrandNotFound, got %v", err)
	}
}
