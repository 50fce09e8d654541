package schema

import (
	"market-catalog/internal/domain"
)

// ProductInput is the untrusted payload for product creation. Unknown extra
// fields are ignored by the JSON decoder; absent optional fields fall back
// to their defaults in ToProduct.
type ProductInput struct {
	BrandID     string   `json:"brand_id" validate:"required"`
	ProductName string   `json:"product_name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required,oneof=Fashion Electronics Grocery Beauty Sports Other"`
	Images      []string `json:"images" validate:"required,min=1,dive,url"`
	Stock       *int     `json:"stock" validate:"required"`
	Featured    bool     `json:"featured"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags"`
}

// ProductPatch carries a partial update. Only non-nil fields are applied;
// present fields are still held to the same format and enum rules.
type ProductPatch struct {
	BrandID     *string   `json:"brand_id" validate:"omitempty,min=1"`
	ProductName *string   `json:"product_name" validate:"omitempty,min=2,max=100"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category" validate:"omitempty,oneof=Fashion Electronics Grocery Beauty Sports Other"`
	Images      *[]string `json:"images" validate:"omitempty,min=1,dive,url"`
	Stock       *int      `json:"stock"`
	Featured    *bool     `json:"featured"`
	Rating      *float64  `json:"rating"`
	Tags        *[]string `json:"tags"`
}

// ValidateProduct normalizes the category then validates the full input.
func ValidateProduct(in *ProductInput) []FieldError {
	in.Category = NormalizeCategory(in.Category)
	return check(in)
}

// ValidateProductPatch normalizes the category (when present) then
// validates whichever fields the patch carries.
func ValidateProductPatch(p *ProductPatch) []FieldError {
	if p.Category != nil {
		normalized := NormalizeCategory(*p.Category)
		p.Category = &normalized
	}
	return check(p)
}

// ToProduct converts validated input into a product entity with defaults
// applied. Identifier and timestamps are stamped by the service.
func (in *ProductInput) ToProduct() *domain.Product {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Product{
		BrandID:     in.BrandID,
		ProductName: in.ProductName,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Images:      in.Images,
		Stock:       *in.Stock,
		Featured:    in.Featured,
		Rating:      in.Rating,
		Tags:        tags,
	}
}

// IsEmpty reports whether the patch carries no fields at all. An empty
// patch is still a valid update; it only refreshes updated_at.
func (p *ProductPatch) IsEmpty() bool {
	return p.BrandID == nil && p.ProductName == nil && p.Description == nil &&
		p.Price == nil && p.Category == nil && p.Images == nil &&
		p.Stock == nil && p.Featured == nil && p.Rating == nil && p.Tags == nil
}
