package transport

import (
	"net/http"
	"strconv"
	"strings"

	"market-catalog/internal/domain"
	"market-catalog/internal/middleware"
	"market-catalog/internal/repository"
	"market-catalog/internal/schema"
	"market-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductSummary is the trimmed product projection returned by the list route
type ProductSummary struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image,omitempty"`
	Stock        int    `json:"stock"`
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Post("/new", h.Create)
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/recent", h.Recent)
		r.Get("/brand/{brandID}", h.ListByBrand)
		r.Get("/category/{category}", h.ListByCategory)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles product creation
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input schema.ProductInput

	if err := middleware.DecodeJSON(r, &input); err != nil {
		h.logger.Debug("Product create decode failed", zap.Error(err))
		if err == middleware.ErrEmptyBody {
			middleware.RespondWithError(w, http.StatusBadRequest, "no details entered")
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := schema.ValidateProduct(&input); fieldErrors != nil {
		h.logger.Debug("Product validation failed", zap.Any("errors", fieldErrors))
		middleware.RespondWithFieldErrors(w, fieldErrors)
		return
	}

	product, err := h.productService.Create(r.Context(), &input)
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	h.logger.Info("Product created successfully",
		zap.String("product_id", product.ProductID),
		zap.String("product_name", product.ProductName),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Product created successfully",
		"product": product,
	})
}

// List returns a simplified paginated projection of products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := intParam(r, "page", 1)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid page parameter")
		return
	}
	limit, err := intParam(r, "limit", repository.DefaultLimit)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}

	sortBy := r.URL.Query().Get("sort")
	sortOrder := repository.SortOrderDesc
	if strings.EqualFold(r.URL.Query().Get("order"), "asc") {
		sortOrder = repository.SortOrderAsc
	}

	products, err := h.productService.List(r.Context(), page, limit, sortBy, sortOrder)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	if len(products) == 0 {
		middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"total":    0,
			"products": []ProductSummary{},
		})
		return
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summary := ProductSummary{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Stock:       p.Stock,
		}
		if len(p.Images) > 0 {
			summary.ProductImage = p.Images[0]
		}
		summaries = append(summaries, summary)
	}

	middleware.RespondWithJSON(w, http.StatusOK, summaries)
}

// GetByID returns a single product
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	product, err := h.productService.GetByID(r.Context(), productID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to fetch product", zap.String("product_id", productID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Update handles partial product updates. An empty patch is valid and
// still refreshes updated_at.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var patch schema.ProductPatch
	if err := middleware.DecodeJSON(r, &patch); err != nil {
		h.logger.Debug("Product update decode failed", zap.Error(err))
		if err == middleware.ErrEmptyBody {
			middleware.RespondWithError(w, http.StatusBadRequest, "no data provided")
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := schema.ValidateProductPatch(&patch); fieldErrors != nil {
		h.logger.Debug("Product patch validation failed", zap.Any("errors", fieldErrors))
		middleware.RespondWithFieldErrors(w, fieldErrors)
		return
	}

	product, err := h.productService.Update(r.Context(), productID, &patch)
	if err != nil {
		if err == repository.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to update product", zap.String("product_id", productID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	h.logger.Info("Product updated successfully", zap.String("product_id", productID))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product updated successfully",
		"product": product,
	})
}

// Delete removes a product
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := h.productService.Delete(r.Context(), productID); err != nil {
		if err == repository.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to delete product", zap.String("product_id", productID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	h.logger.Info("Product deleted successfully", zap.String("product_id", productID))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// ListByBrand returns all products of one brand
func (h *ProductHandler) ListByBrand(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")

	products, err := h.productService.ListByBrand(r.Context(), brandID)
	if err != nil {
		h.logger.Error("Failed to fetch brand products", zap.String("brand_id", brandID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch brand products")
		return
	}

	respondWithProducts(w, products)
}

// ListByCategory returns all products in one category. The path value is
// capitalization-normalized the same way category input is.
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := schema.NormalizeCategory(chi.URLParam(r, "category"))

	products, err := h.productService.ListByCategory(r.Context(), category)
	if err != nil {
		h.logger.Error("Failed to fetch category products", zap.String("category", category), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch category products")
		return
	}

	respondWithProducts(w, products)
}

// Recent returns the newest products
func (h *ProductHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", 5)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}

	products, err := h.productService.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to fetch recent products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch recent products")
		return
	}

	respondWithProducts(w, products)
}

// Search runs a filtered, sorted, paginated product search. Malformed
// numeric parameters are invalid input, never an internal error.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := repository.SearchParams{
		Query:    strings.TrimSpace(query.Get("q")),
		Sort:     query.Get("sort"),
		Category: query.Get("category"),
		BrandID:  query.Get("brand_id"),
	}
	if params.Sort == "" {
		params.Sort = "newest"
	}

	var err error
	params.Page, err = intParam(r, "page", 1)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid page parameter")
		return
	}
	params.Limit, err = intParam(r, "limit", repository.DefaultLimit)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}

	params.MinPrice, err = floatParam(r, "min_price")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid min_price parameter")
		return
	}
	params.MaxPrice, err = floatParam(r, "max_price")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid max_price parameter")
		return
	}

	if raw := query.Get("in_stock"); raw != "" {
		inStock := strings.EqualFold(raw, "true")
		params.InStock = &inStock
	}

	result, err := h.productService.Search(r.Context(), params)
	if err != nil {
		h.logger.Error("Failed to search products", zap.String("query", params.Query), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to search products")
		return
	}

	h.logger.Info("Search query executed",
		zap.String("query", params.Query),
		zap.Int("total", result.Total),
	)
	middleware.RespondWithJSON(w, http.StatusOK, result)
}

func respondWithProducts(w http.ResponseWriter, products []*domain.Product) {
	if len(products) == 0 {
		middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"total":    0,
			"products": []*domain.Product{},
		})
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// intParam parses an optional integer query parameter
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// floatParam parses an optional float query parameter; nil means unset
func floatParam(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
