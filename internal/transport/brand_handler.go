package transport

import (
	"net/http"

	"market-catalog/internal/middleware"
	"market-catalog/internal/repository"
	"market-catalog/internal/schema"
	"market-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BrandSummary is the trimmed brand projection returned by the list route
type BrandSummary struct {
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
	Logo    string `json:"logo,omitempty"`
}

// BrandHandler handles HTTP requests for brand operations
type BrandHandler struct {
	brandService service.BrandService
	logger       *zap.Logger
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService service.BrandService, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
		logger:       logger,
	}
}

// RegisterRoutes registers all brand routes
func (h *BrandHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/brands", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Post("/{id}/update", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles brand creation
func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input schema.BrandInput

	if err := middleware.DecodeJSON(r, &input); err != nil {
		h.logger.Debug("Brand create decode failed", zap.Error(err))
		if err == middleware.ErrEmptyBody {
			middleware.RespondWithError(w, http.StatusBadRequest, "missing request body")
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := schema.ValidateBrand(&input); fieldErrors != nil {
		h.logger.Debug("Brand validation failed", zap.Any("errors", fieldErrors))
		middleware.RespondWithFieldErrors(w, fieldErrors)
		return
	}

	brand, err := h.brandService.Create(r.Context(), &input)
	if err != nil {
		if err == service.ErrBrandEmailExists {
			h.logger.Debug("Duplicate brand email", zap.String("email", input.Email))
			middleware.RespondWithError(w, http.StatusBadRequest, "email already registered")
			return
		}

		h.logger.Error("Failed to create brand", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create brand")
		return
	}

	h.logger.Info("Brand created successfully",
		zap.String("brand_id", brand.BrandID),
		zap.String("brand_name", brand.BrandName),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Brand created successfully",
		"brand":   brand,
	})
}

// List returns a simplified projection of all brands
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list brands", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch brands")
		return
	}

	if len(brands) == 0 {
		middleware.RespondWithError(w, http.StatusNotFound, "no brands available yet")
		return
	}

	summaries := make([]BrandSummary, 0, len(brands))
	for _, b := range brands {
		summaries = append(summaries, BrandSummary{
			BrandID: b.BrandID,
			Name:    b.BrandName,
			Logo:    b.BrandLogo,
		})
	}

	middleware.RespondWithJSON(w, http.StatusOK, summaries)
}

// GetByID returns a single brand
func (h *BrandHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "id")

	brand, err := h.brandService.GetByID(r.Context(), brandID)
	if err != nil {
		if err == repository.ErrBrandNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "brand not found")
			return
		}

		h.logger.Error("Failed to fetch brand", zap.String("brand_id", brandID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch brand")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, brand)
}

// Update handles partial brand updates
func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "id")

	var patch schema.BrandPatch
	if err := middleware.DecodeJSON(r, &patch); err != nil {
		h.logger.Debug("Brand update decode failed", zap.Error(err))
		if err == middleware.ErrEmptyBody {
			middleware.RespondWithError(w, http.StatusBadRequest, "missing request body")
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := schema.ValidateBrandPatch(&patch); fieldErrors != nil {
		h.logger.Debug("Brand patch validation failed", zap.Any("errors", fieldErrors))
		middleware.RespondWithFieldErrors(w, fieldErrors)
		return
	}

	brand, err := h.brandService.Update(r.Context(), brandID, &patch)
	if err != nil {
		if err == repository.ErrBrandNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "brand not found")
			return
		}

		h.logger.Error("Failed to update brand", zap.String("brand_id", brandID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update brand")
		return
	}

	h.logger.Info("Brand updated successfully", zap.String("brand_id", brandID))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Brand updated successfully",
		"brand":   brand,
	})
}

// Delete removes a brand. Its products are left in place.
func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "id")

	if err := h.brandService.Delete(r.Context(), brandID); err != nil {
		if err == repository.ErrBrandNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "brand not found")
			return
		}

		h.logger.Error("Failed to delete brand", zap.String("brand_id", brandID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete brand")
		return
	}

	h.logger.Info("Brand deleted successfully", zap.String("brand_id", brandID))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Brand deleted successfully"})
}
