package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func validProductInput() *ProductInput {
	return &ProductInput{
		BrandID:     "brand-1",
		ProductName: "Wireless Mouse",
		Description: "A comfortable wireless mouse",
		Price:       floatPtr(29.99),
		Category:    "Electronics",
		Images:      []string{"https://example.com/mouse.jpg"},
		Stock:       intPtr(10),
	}
}

func TestValidateProduct_Valid(t *testing.T) {
	input := validProductInput()
	assert.Nil(t, ValidateProduct(input))
}

func TestValidateProduct_CategoryNormalization(t *testing.T) {
	tests := []struct {
		input string
		want  string
		valid bool
	}{
		{"fashion", "Fashion", true},
		{"FASHION", "Fashion", true},
		{"fAsHiOn", "Fashion", true},
		{"Electronics", "Electronics", true},
		{"unknown", "Unknown", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			input := validProductInput()
			input.Category = tt.input

			errs := ValidateProduct(input)
			assert.Equal(t, tt.want, input.Category)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.NotEmpty(t, errs)
				assert.Equal(t, "category", errs[0].Field)
			}
		})
	}
}

func TestValidateProduct_EmptyImagesRejected(t *testing.T) {
	input := validProductInput()
	input.Images = []string{}

	errs := ValidateProduct(input)
	require.NotEmpty(t, errs)
	assert.Equal(t, "images", errs[0].Field)
}

func TestValidateProduct_BadImageURLRejected(t *testing.T) {
	input := validProductInput()
	input.Images = []string{"not-a-url"}

	errs := ValidateProduct(input)
	require.NotEmpty(t, errs)
}

func TestValidateProduct_MissingRequiredFields(t *testing.T) {
	errs := ValidateProduct(&ProductInput{})
	require.NotEmpty(t, errs)

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
		assert.NotEmpty(t, e.Message)
	}

	for _, want := range []string{"brand_id", "product_name", "description", "price", "category", "images", "stock"} {
		assert.True(t, fields[want], "expected error for field %s", want)
	}
}

func TestValidateProduct_ZeroStockAndPriceAllowed(t *testing.T) {
	input := validProductInput()
	input.Stock = intPtr(0)
	input.Price = floatPtr(0)

	assert.Nil(t, ValidateProduct(input))
}

func TestValidateProduct_NameLengthBounds(t *testing.T) {
	input := validProductInput()
	input.ProductName = "x"
	errs := ValidateProduct(input)
	require.NotEmpty(t, errs)
	assert.Equal(t, "product_name", errs[0].Field)

	input = validProductInput()
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	input.ProductName = string(long)
	errs = ValidateProduct(input)
	require.NotEmpty(t, errs)
	assert.Equal(t, "product_name", errs[0].Field)
}

func TestValidateProductPatch_RelaxesRequired(t *testing.T) {
	// An empty patch is valid: required constraints are relaxed
	patch := &ProductPatch{}
	assert.Nil(t, ValidateProductPatch(patch))
	assert.True(t, patch.IsEmpty())
}

func TestValidateProductPatch_PresentFieldsStillChecked(t *testing.T) {
	patch := &ProductPatch{ProductName: strPtr("x")}
	errs := ValidateProductPatch(patch)
	require.NotEmpty(t, errs)
	assert.Equal(t, "product_name", errs[0].Field)

	empty := []string{}
	patch = &ProductPatch{Images: &empty}
	errs = ValidateProductPatch(patch)
	require.NotEmpty(t, errs)
	assert.Equal(t, "images", errs[0].Field)

	patch = &ProductPatch{Category: strPtr("grocery")}
	assert.Nil(t, ValidateProductPatch(patch))
	assert.Equal(t, "Grocery", *patch.Category)

	patch = &ProductPatch{Category: strPtr("toys")}
	errs = ValidateProductPatch(patch)
	require.NotEmpty(t, errs)
	assert.Equal(t, "category", errs[0].Field)
}

func TestToProduct_AppliesDefaults(t *testing.T) {
	input := validProductInput()
	product := input.ToProduct()

	assert.False(t, product.Featured)
	assert.Equal(t, 0.0, product.Rating)
	assert.NotNil(t, product.Tags)
	assert.Empty(t, product.Tags)
	assert.Equal(t, 29.99, product.Price)
	assert.Equal(t, 10, product.Stock)
}
