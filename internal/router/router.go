package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"docreader/internal/config"
	"docreader/internal/handler"
	"docreader/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	extractH *handler.ExtractHandler,
	invoiceH *handler.InvoiceHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Extraction
	r.POST("/extract", extractH.Extract)

	// Invoice CRUD and exports. The export route is registered before the
	// parameterized routes so gin does not treat "export" as an :id.
	r.GET("/invoices/export", invoiceH.DownloadWorkbook)
	r.POST("/invoices", invoiceH.Create)
	r.GET("/invoices", invoiceH.List)
	r.GET("/invoices/:id", invoiceH.GetByID)
	r.DELETE("/invoices/:id", invoiceH.Delete)
	r.GET("/invoices/:id/pdf", invoiceH.DownloadPDF)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
