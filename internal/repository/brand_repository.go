package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"market-catalog/internal/domain"
	"market-catalog/internal/schema"
)

var (
	ErrBrandNotFound = errors.New("brand not found")
)

// BrandRepository defines the interface for brand data access
type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	FindByID(ctx context.Context, brandID string) (*domain.Brand, error)
	FindByEmail(ctx context.Context, email string) (*domain.Brand, error)
	List(ctx context.Context) ([]*domain.Brand, error)
	Update(ctx context.Context, brandID string, patch *schema.BrandPatch) (*domain.Brand, error)
	Delete(ctx context.Context, brandID string) error
}

type brandRepository struct {
	db *sql.DB
}

// NewBrandRepository creates a new instance of BrandRepository
func NewBrandRepository(db *sql.DB) BrandRepository {
	return &brandRepository{db: db}
}

const brandColumns = `brand_id, brand_name, email, phone_number, brand_logo, brand_description, documents, verification_status, created_at, updated_at`

// Create inserts a new brand into the database using parameterized queries
func (r *brandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	documents, err := marshalList(brand.Documents)
	if err != nil {
		return fmt.Errorf("failed to encode brand documents: %w", err)
	}

	query := `
		INSERT INTO brands (brand_id, brand_name, email, phone_number, brand_logo, brand_description, documents, verification_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		brand.BrandID,
		brand.BrandName,
		brand.Email,
		brand.PhoneNumber,
		brand.BrandLogo,
		brand.BrandDescription,
		documents,
		brand.VerificationStatus,
		brand.CreatedAt,
		brand.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}

	return nil
}

// FindByID retrieves a brand by its generated identifier
func (r *brandRepository) FindByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM brands WHERE brand_id = $1`, brandColumns)

	brand, err := scanBrand(r.db.QueryRowContext(ctx, query, brandID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to find brand by ID: %w", err)
	}

	return brand, nil
}

// FindByEmail retrieves a brand by email. Used by the duplicate-email
// precheck on brand creation; the check-then-insert sequence is not atomic.
func (r *brandRepository) FindByEmail(ctx context.Context, email string) (*domain.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM brands WHERE email = $1`, brandColumns)

	brand, err := scanBrand(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to find brand by email: %w", err)
	}

	return brand, nil
}

// List retrieves all brands. The brand surface has no pagination.
func (r *brandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM brands ORDER BY created_at DESC`, brandColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := []*domain.Brand{}
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating brands: %w", err)
	}

	return brands, nil
}

// Update applies a merge-patch: only fields present in the patch are
// modified, and updated_at is always refreshed, even for an empty patch.
// Returns the updated record.
func (r *brandRepository) Update(ctx context.Context, brandID string, patch *schema.BrandPatch) (*domain.Brand, error) {
	set := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.BrandName != nil {
		addSet("brand_name", *patch.BrandName)
	}
	if patch.Email != nil {
		addSet("email", *patch.Email)
	}
	if patch.PhoneNumber != nil {
		addSet("phone_number", *patch.PhoneNumber)
	}
	if patch.BrandLogo != nil {
		addSet("brand_logo", *patch.BrandLogo)
	}
	if patch.BrandDescription != nil {
		addSet("brand_description", *patch.BrandDescription)
	}
	if patch.Documents != nil {
		documents, err := marshalList(*patch.Documents)
		if err != nil {
			return nil, fmt.Errorf("failed to encode brand documents: %w", err)
		}
		addSet("documents", documents)
	}
	if patch.VerificationStatus != nil {
		addSet("verification_status", *patch.VerificationStatus)
	}

	addSet("updated_at", time.Now().UTC())

	query := fmt.Sprintf(
		"UPDATE brands SET %s WHERE brand_id = $%d",
		strings.Join(set, ", "),
		argIndex,
	)
	args = append(args, brandID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, ErrBrandNotFound
	}

	return r.FindByID(ctx, brandID)
}

// Delete removes a brand by identifier. Deleting a brand does not cascade
// to its products.
func (r *brandRepository) Delete(ctx context.Context, brandID string) error {
	query := `DELETE FROM brands WHERE brand_id = $1`

	result, err := r.db.ExecContext(ctx, query, brandID)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrBrandNotFound
	}

	return nil
}

// rowScanner lets row and rows scanning share one code path
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBrand(row rowScanner) (*domain.Brand, error) {
	brand := &domain.Brand{}
	var documents []byte

	err := row.Scan(
		&brand.BrandID,
		&brand.BrandName,
		&brand.Email,
		&brand.PhoneNumber,
		&brand.BrandLogo,
		&brand.BrandDescription,
		&documents,
		&brand.VerificationStatus,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalList(documents, &brand.Documents); err != nil {
		return nil, fmt.Errorf("failed to decode brand documents: %w", err)
	}

	return brand, nil
}
