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
	ErrProductNotFound = errors.New("product not found")
)

// SortOrder represents the sort direction
type SortOrder string

const (
	SortOrderAsc  SortOrder = "ASC"
	SortOrderDesc SortOrder = "DESC"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// SearchParams holds the optional query parameters of a product search.
// Nil pointer fields mean "not supplied".
type SearchParams struct {
	Query    string
	Page     int
	Limit    int
	Sort     string
	Category string
	BrandID  string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
}

// SearchResult is a page of matching products plus pagination metadata.
type SearchResult struct {
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Products   []*domain.Product `json:"products"`
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, productID string) (*domain.Product, error)
	List(ctx context.Context, page, limit int, sortBy string, sortOrder SortOrder) ([]*domain.Product, error)
	Update(ctx context.Context, productID string, patch *schema.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
	ListByBrand(ctx context.Context, brandID string) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	Recent(ctx context.Context, limit int) ([]*domain.Product, error)
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `product_id, brand_id, product_name, description, price, category, images, stock, featured, rating, tags, created_at, updated_at`

// Create inserts a new product into the database using parameterized queries
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	images, err := marshalList(product.Images)
	if err != nil {
		return fmt.Errorf("failed to encode product images: %w", err)
	}
	tags, err := marshalList(product.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode product tags: %w", err)
	}

	query := `
		INSERT INTO products (product_id, brand_id, product_name, description, price, category, images, stock, featured, rating, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		product.ProductID,
		product.BrandID,
		product.ProductName,
		product.Description,
		product.Price,
		product.Category,
		images,
		product.Stock,
		product.Featured,
		product.Rating,
		tags,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// FindByID retrieves a product by its generated identifier
func (r *productRepository) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = $1`, productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, productID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// List retrieves products with pagination and sorting
func (r *productRepository) List(ctx context.Context, page, limit int, sortBy string, sortOrder SortOrder) ([]*domain.Product, error) {
	// Validate sort field to prevent SQL injection
	validSortFields := map[string]bool{
		"product_name": true,
		"price":        true,
		"created_at":   true,
		"stock":        true,
		"rating":       true,
	}

	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}

	if sortOrder != SortOrderAsc && sortOrder != SortOrderDesc {
		sortOrder = SortOrderDesc
	}

	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		ORDER BY %s %s
		LIMIT $1 OFFSET $2
	`, productColumns, sortBy, sortOrder)

	return r.queryProducts(ctx, query, limit, offset)
}

// Update applies a merge-patch: only fields present in the patch are
// modified, and updated_at is always refreshed, even for an empty patch.
// Returns the updated record.
func (r *productRepository) Update(ctx context.Context, productID string, patch *schema.ProductPatch) (*domain.Product, error) {
	set := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.BrandID != nil {
		addSet("brand_id", *patch.BrandID)
	}
	if patch.ProductName != nil {
		addSet("product_name", *patch.ProductName)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Price != nil {
		addSet("price", *patch.Price)
	}
	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.Images != nil {
		images, err := marshalList(*patch.Images)
		if err != nil {
			return nil, fmt.Errorf("failed to encode product images: %w", err)
		}
		addSet("images", images)
	}
	if patch.Stock != nil {
		addSet("stock", *patch.Stock)
	}
	if patch.Featured != nil {
		addSet("featured", *patch.Featured)
	}
	if patch.Rating != nil {
		addSet("rating", *patch.Rating)
	}
	if patch.Tags != nil {
		tags, err := marshalList(*patch.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode product tags: %w", err)
		}
		addSet("tags", tags)
	}

	addSet("updated_at", time.Now().UTC())

	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE product_id = $%d",
		strings.Join(set, ", "),
		argIndex,
	)
	args = append(args, productID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, ErrProductNotFound
	}

	return r.FindByID(ctx, productID)
}

// Delete removes a product by identifier
func (r *productRepository) Delete(ctx context.Context, productID string) error {
	query := `DELETE FROM products WHERE product_id = $1`

	result, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// ListByBrand retrieves all products of one brand, unpaginated
func (r *productRepository) ListByBrand(ctx context.Context, brandID string) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE brand_id = $1 ORDER BY created_at DESC`, productColumns)
	return r.queryProducts(ctx, query, brandID)
}

// ListByCategory retrieves all products in one category, unpaginated
func (r *productRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE category = $1 ORDER BY created_at DESC`, productColumns)
	return r.queryProducts(ctx, query, category)
}

// Recent retrieves the newest products
func (r *productRepository) Recent(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit < 1 {
		limit = 5
	}
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY created_at DESC LIMIT $1`, productColumns)
	return r.queryProducts(ctx, query, limit)
}

// searchSortTokens maps sort-key tokens to ORDER BY clauses. Unknown tokens
// are silently dropped.
var searchSortTokens = map[string]string{
	"price_asc":  "price ASC",
	"price_desc": "price DESC",
	"newest":     "created_at DESC",
	"oldest":     "created_at ASC",
	"name_asc":   "product_name ASC",
	"name_desc":  "product_name DESC",
}

// Search translates the optional query parameters into a single filtered,
// sorted, paginated query plus an independent total count.
func (r *productRepository) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	page, limit := clampPage(params.Page, params.Limit)

	// Build the WHERE clause. All present predicates are AND-combined.
	where := []string{}
	args := []interface{}{}
	argIndex := 1

	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		where = append(where, fmt.Sprintf(
			"(product_name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)",
			argIndex, argIndex, argIndex,
		))
		args = append(args, pattern)
		argIndex++
	}

	if params.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, params.Category)
		argIndex++
	}

	if params.BrandID != "" {
		where = append(where, fmt.Sprintf("brand_id = $%d", argIndex))
		args = append(args, params.BrandID)
		argIndex++
	}

	if params.InStock != nil && *params.InStock {
		where = append(where, "stock > 0")
	}

	if params.MinPrice != nil {
		where = append(where, fmt.Sprintf("price >= $%d", argIndex))
		args = append(args, *params.MinPrice)
		argIndex++
	}

	if params.MaxPrice != nil {
		where = append(where, fmt.Sprintf("price <= $%d", argIndex))
		args = append(args, *params.MaxPrice)
		argIndex++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	// Count total matches independently of the page window
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM products %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, productColumns, whereClause, buildSortClause(params.Sort), argIndex, argIndex+1)

	args = append(args, limit, offset)

	products, err := r.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
		Products:   products,
	}, nil
}

// buildSortClause resolves comma-separated sort tokens into a multi-key
// ORDER BY clause, applied in the order given. Zero resolved tokens fall
// back to newest-first.
func buildSortClause(sort string) string {
	keys := []string{}
	for _, token := range strings.Split(sort, ",") {
		if clause, ok := searchSortTokens[strings.TrimSpace(token)]; ok {
			keys = append(keys, clause)
		}
	}
	if len(keys) == 0 {
		return "created_at DESC"
	}
	return strings.Join(keys, ", ")
}

// clampPage normalizes page and limit: page is at least 1; a zero limit
// takes the default, anything else is clamped to [1, 100].
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return page, limit
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var images, tags []byte

	err := row.Scan(
		&product.ProductID,
		&product.BrandID,
		&product.ProductName,
		&product.Description,
		&product.Price,
		&product.Category,
		&images,
		&product.Stock,
		&product.Featured,
		&product.Rating,
		&tags,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalList(images, &product.Images); err != nil {
		return nil, fmt.Errorf("failed to decode product images: %w", err)
	}
	if err := unmarshalList(tags, &product.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode product tags: %w", err)
	}

	return product, nil
}
