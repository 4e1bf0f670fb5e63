// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"inventuagro/internal/domain/catalogs/client"
	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/domain/config"
	"inventuagro/internal/domain/documents/quotation"
	"inventuagro/internal/domain/migration"
	"inventuagro/internal/domain/reports"
	"inventuagro/internal/infrastructure/export"
	"inventuagro/internal/infrastructure/http/v1/handlers"
	"inventuagro/internal/infrastructure/http/v1/middleware"
	"inventuagro/internal/infrastructure/storage/localstore"
	"inventuagro/internal/infrastructure/storage/postgres"
	"inventuagro/internal/infrastructure/storage/postgres/catalog_repo"
	"inventuagro/internal/infrastructure/storage/postgres/document_repo"
	"inventuagro/internal/infrastructure/storage/postgres/report_repo"
	"inventuagro/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager manages transactions for all repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// LocalStore is the file-based fallback store; when set, the one-time
	// migration endpoint is registered with it as the source.
	LocalStore *localstore.Store

	// CompanyName overrides the PDF letterhead name.
	CompanyName string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerCatalogRoutes(v1, cfg)
		registerQuotationRoutes(v1, cfg)
		registerConfigRoutes(v1, cfg)
		registerReportRoutes(v1, cfg)
		registerMigrationRoutes(v1, cfg)
	}

	return router
}

// catalogRepos builds the catalog repositories, overlaying the local
// snapshot when a local store is configured so every read applies the
// local-wins merge policy.
func catalogRepos(cfg RouterConfig) (material.Repository, operation.Repository, client.Repository, product.Repository) {
	var (
		materials  material.Repository  = catalog_repo.NewMaterialRepo(cfg.TxManager)
		operations operation.Repository = catalog_repo.NewOperationRepo(cfg.TxManager)
		clients    client.Repository    = catalog_repo.NewClientRepo(cfg.TxManager)
		products   product.Repository   = catalog_repo.NewProductRepo(cfg.TxManager)
	)
	if cfg.LocalStore != nil {
		materials = cfg.LocalStore.OverlayMaterials(materials)
		operations = cfg.LocalStore.OverlayOperations(operations)
		clients = cfg.LocalStore.OverlayClients(clients)
		products = cfg.LocalStore.OverlayProducts(products)
	}
	return materials, operations, clients, products
}

// quotationRepo builds the quotation repository with the same overlay rule.
func quotationRepo(cfg RouterConfig) localstore.QuotationRemote {
	repo := document_repo.NewQuotationRepo(cfg.TxManager)
	if cfg.LocalStore != nil {
		return cfg.LocalStore.OverlayQuotations(repo)
	}
	return repo
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	materialRepo, operationRepo, clientRepo, productRepo := catalogRepos(cfg)

	// --- MATERIALS ---
	{
		service := material.NewService(materialRepo, cfg.TxManager)
		handler := handlers.NewMaterialHandler(baseHandler, service)
		RegisterCatalogRoutes(rg.Group("/materials"), handler)
	}

	// --- OPERATIONS ---
	{
		service := operation.NewService(operationRepo, cfg.TxManager)
		handler := handlers.NewOperationHandler(baseHandler, service)
		RegisterCatalogRoutes(rg.Group("/operations"), handler)
	}

	// --- CLIENTS ---
	{
		service := client.NewService(clientRepo, cfg.TxManager)
		handler := handlers.NewClientHandler(baseHandler, service)
		RegisterCatalogRoutes(rg.Group("/clients"), handler)
	}

	// --- PRODUCTS ---
	{
		service := product.NewService(productRepo, materialRepo, operationRepo, cfg.TxManager)
		handler := handlers.NewProductHandler(baseHandler, service)

		products := rg.Group("/products")
		RegisterCatalogRoutes(products, handler)
		products.POST("/derive-cost", handler.DeriveCost)
		products.POST("/:id/sales", handler.RecordSale)
		products.GET("/by-reference/:reference", handler.GetByReference)
	}
}

// registerQuotationRoutes registers quotation document endpoints.
func registerQuotationRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	materialRepo, operationRepo, _, productRepo := catalogRepos(cfg)
	productService := product.NewService(productRepo, materialRepo, operationRepo, cfg.TxManager)

	service := quotation.NewService(quotationRepo(cfg), cfg.TxManager)
	renderer := export.NewPDFRenderer(export.PDFConfig{
		CompanyName: cfg.CompanyName,
		Operations:  operationRepo,
	})

	handler := handlers.NewQuotationHandler(baseHandler, service, productService, renderer)

	quotations := rg.Group("/quotations")
	{
		quotations.GET("", handler.List)
		quotations.POST("", handler.Create)
		quotations.GET("/:id", handler.Get)
		quotations.PUT("/:id", handler.Update)
		quotations.DELETE("/:id", handler.Delete)
		quotations.PATCH("/:id/status", handler.UpdateStatus)
		quotations.GET("/:id/pdf", handler.ExportPDF)
	}
}

// registerConfigRoutes registers configuration endpoints.
func registerConfigRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	var repo config.Repository = postgres.NewConfigRepo(cfg.TxManager)
	if cfg.LocalStore != nil {
		repo = cfg.LocalStore.OverlayConfiguration(repo)
	}
	service := config.NewService(repo)
	handler := handlers.NewConfigHandler(baseHandler, service)

	configGroup := rg.Group("/config")
	{
		configGroup.GET("", handler.Get)
		configGroup.PUT("", handler.Update)
		configGroup.POST("/brands", handler.AddBrand)
		configGroup.POST("/machine-types", handler.AddMachineType)
		configGroup.POST("/thicknesses", handler.AddThickness)
	}
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	reportRepo := report_repo.NewReportRepo(quotationRepo(cfg))
	reportService := reports.NewService(reportRepo)
	reportHandler := handlers.NewReportsHandler(baseHandler, reportService)

	reportsGroup := rg.Group("/reports")
	{
		reportsGroup.GET("/summary", reportHandler.GetSummary)
		reportsGroup.GET("/monthly", reportHandler.GetMonthly)
	}
}

// registerMigrationRoutes registers the local-store migration endpoint.
func registerMigrationRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.LocalStore == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()

	target := postgres.NewMigrationTarget(cfg.TxManager)
	service := migration.NewService(cfg.LocalStore, target)
	handler := handlers.NewMigrationHandler(baseHandler, service)

	rg.POST("/migration/run", handler.Run)
}
