package router

import (
	"salesdash/internal/config"
	"salesdash/internal/handler"
	"salesdash/internal/middleware"
	"salesdash/internal/service"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Loader ← Caches/Disk
func New(cfg *config.Config, loader *service.Loader) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Services ─────────────────────────────────────────────────────────────
	salesSvc := service.NewSalesService(loader)
	inventorySvc := service.NewInventoryService(loader)
	reconciliationSvc := service.NewReconciliationService(loader)
	fileSvc := service.NewFileService(loader)

	// ── Handlers ─────────────────────────────────────────────────────────────
	salesH := handler.NewSalesHandler(salesSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	reconciliationH := handler.NewReconciliationHandler(reconciliationSvc)
	filesH := handler.NewFilesHandler(fileSvc)
	cacheH := handler.NewCacheHandler(loader)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(cfg.SalesDataDir, cfg.InventoryDataDir))

	v1 := r.Group("/v1")
	{
		files := v1.Group("/files")
		{
			files.GET("/sales", filesH.ListSales)
			files.POST("/sales", filesH.UploadSales)
			files.GET("/inventory", filesH.ListInventory)
			files.POST("/inventory", filesH.UploadInventory)
		}

		sales := v1.Group("/sales")
		{
			sales.GET("/summary", salesH.Summary)
			sales.GET("/products", salesH.Products)
			sales.GET("/line-items", salesH.LineItems)
		}

		inv := v1.Group("/inventory")
		{
			inv.GET("", inventoryH.List)
			inv.GET("/unsold", inventoryH.Unsold)
		}

		rec := v1.Group("/reconciliation")
		{
			rec.GET("", reconciliationH.Reconcile)
			rec.GET("/export", reconciliationH.Export)
		}

		v1.POST("/cache/purge", cacheH.Purge)
	}

	return r
}
