package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tireshop/pos-system/docs"
	"github.com/tireshop/pos-system/internal/api/handler"
	"github.com/tireshop/pos-system/internal/api/middleware"
	"github.com/tireshop/pos-system/internal/core/domain"
	"github.com/tireshop/pos-system/internal/core/service"
	"github.com/tireshop/pos-system/internal/infrastructure/config"
	mongodb "github.com/tireshop/pos-system/internal/infrastructure/db/mongo"
	redisdb "github.com/tireshop/pos-system/internal/infrastructure/db/redis"
	"github.com/tireshop/pos-system/pkg/invoice"
	"github.com/tireshop/pos-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, deliveryQueue service.DeliveryQueue) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pos"))

	// --- Repositories ---
	authRepo := mongodb.NewAuthRepository(db)
	inventoryRepo := mongodb.NewInventoryRepository(db)
	salesRepo := mongodb.NewSalesRepository(db)
	purchaseRepo := mongodb.NewPurchaseRepository(db)
	invoiceSeq := redisdb.NewInvoiceSequence(rdb)

	// --- Services ---
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	inventoryService := service.NewInventoryService(inventoryRepo, log)
	salesService := service.NewSalesService(salesRepo, inventoryRepo, invoiceSeq, log)
	purchaseService := service.NewPurchaseService(purchaseRepo, inventoryRepo, log)
	profitService := service.NewProfitService(salesRepo, log)
	dashboardService := service.NewDashboardService(salesRepo, inventoryRepo, profitService, cfg.LowStockThreshold, log)
	renderer := invoice.NewRenderer(invoice.ShopInfo{
		Name:    cfg.Shop.Name,
		Address: cfg.Shop.Address,
		GSTIN:   cfg.Shop.GSTIN,
		Phone:   cfg.Shop.Phone,
		Email:   cfg.Shop.Email,
	})
	invoiceService := service.NewInvoiceService(salesRepo, renderer, deliveryQueue, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	salesHandler := handler.NewSalesHandler(salesService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	reportHandler := handler.NewReportHandler(profitService, salesService, inventoryService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Inventory ---
	tires := e.Group("/v1/tires", authMiddleware)
	tires.POST("", inventoryHandler.Create)
	tires.GET("", inventoryHandler.List)
	tires.GET("/:id", inventoryHandler.Get)
	tires.PUT("/:id", inventoryHandler.Update)
	tires.DELETE("/:id", inventoryHandler.Delete, adminOnly)

	// --- Sales & invoices ---
	sales := e.Group("/v1/sales", authMiddleware)
	sales.POST("", salesHandler.Create)
	sales.GET("", salesHandler.List)
	sales.GET("/:id", salesHandler.Get)
	sales.GET("/:id/invoice", invoiceHandler.Download)
	sales.POST("/:id/invoice/whatsapp", invoiceHandler.SendWhatsApp)

	// --- Purchases ---
	purchases := e.Group("/v1/purchases", authMiddleware)
	purchases.POST("", purchaseHandler.Create)
	purchases.GET("", purchaseHandler.List)
	purchases.GET("/:id", purchaseHandler.Get)
	purchases.PUT("/:id", purchaseHandler.Update)
	purchases.DELETE("/:id", purchaseHandler.Delete, adminOnly)

	// --- Dashboard & reports ---
	e.GET("/v1/dashboard", dashboardHandler.Get, authMiddleware)

	reports := e.Group("/v1/reports", authMiddleware)
	reports.GET("/profit", reportHandler.ProfitSummary)
	reports.GET("/profit/details", reportHandler.ProfitDetails)
	reports.GET("/daily-closing", reportHandler.DailyClosing)
	reports.GET("/sales", reportHandler.SalesReport)
	reports.GET("/inventory", reportHandler.InventoryReport)

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
