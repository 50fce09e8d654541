package server

import (
	"fmt"
	"net/http"
	"time"

	"market-catalog/internal/config"
	"market-catalog/internal/database"
	custommiddleware "market-catalog/internal/middleware"
	"market-catalog/internal/repository"
	"market-catalog/internal/service"
	"market-catalog/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
}

func NewServer(cfg *config.Config, logger *zap.Logger, dbService *database.Service) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Liveness endpoint
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]string{
			"message": "marketplace catalog API is running",
		})
	})

	// Health check endpoint verifies store connectivity
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := dbService.Health(r.Context()); err != nil {
			logger.Error("Database health check failed", zap.Error(err))
			custommiddleware.RespondWithJSON(w, http.StatusInternalServerError, map[string]string{
				"db_status": "failed",
			})
			return
		}
		custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]string{
			"db_status": "connected",
		})
	})

	db := dbService.DB()

	// Initialize repositories
	brandRepo := repository.NewBrandRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	brandService := service.NewBrandService(brandRepo)
	productService := service.NewProductService(productRepo)

	// Initialize handlers
	brandHandler := transport.NewBrandHandler(brandService, logger)
	productHandler := transport.NewProductHandler(productService, logger)

	// Register routes
	brandHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     dbService,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
