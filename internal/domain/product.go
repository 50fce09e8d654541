package domain

import "time"

// Categories a product can belong to. Input is capitalization-normalized
// before it is checked against this set.
var Categories = []string{"Fashion", "Electronics", "Grocery", "Beauty", "Sports", "Other"}

// Product represents a catalog product belonging to a brand
type Product struct {
	ProductID   string    `json:"product_id" db:"product_id"`
	BrandID     string    `json:"brand_id" db:"brand_id"`
	ProductName string    `json:"product_name" db:"product_name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	Images      []string  `json:"images" db:"images"`
	Stock       int       `json:"stock" db:"stock"`
	Featured    bool      `json:"featured" db:"featured"`
	Rating      float64   `json:"rating" db:"rating"`
	Tags        []string  `json:"tags" db:"tags"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
