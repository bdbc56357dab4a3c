package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heshima/studio-api/internal/api/handler"
	"github.com/heshima/studio-api/internal/api/middleware"
	"github.com/heshima/studio-api/internal/core/service"
	"github.com/heshima/studio-api/internal/infrastructure/config"
	mongodb "github.com/heshima/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/heshima/studio-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Dependencies ---
	productRepo := mongodb.NewProductRepository(db)
	inquiryRepo := mongodb.NewInquiryRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	catalogCache := redisdb.NewProductCache(rdb, cfg.CatalogCacheTTL)

	productService := service.NewProductService(productRepo, catalogCache, log)
	inquiryService := service.NewInquiryService(inquiryRepo, productRepo, log)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(productService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)

	// Every request passes the gate; the policy table decides which ones
	// need credentials at all.
	e.Use(middleware.Gate(middleware.DefaultPolicy(), authService, log))

	// --- Health probes and metrics (public) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Catalog (public, read-only) ---
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)

	// --- Inquiries (submission public, the rest ADMIN) ---
	e.POST("/api/inquiries", inquiryHandler.Create)
	e.GET("/api/inquiries", inquiryHandler.List)
	e.GET("/api/inquiries/:id", inquiryHandler.Get)
	e.DELETE("/api/inquiries/:id", inquiryHandler.Delete)

	return e
}
