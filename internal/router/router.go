package router

import (
	"github.com/gin-gonic/gin"

	"creditsea/internal/config"
	"creditsea/internal/handler"
	"creditsea/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	uploadH *handler.UploadHandler,
	reportH *handler.ReportHandler,
	statsH *handler.StatsHandler,
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

	v1 := r.Group("/api/v1")

	reports := v1.Group("/reports")
	reports.POST("/upload", uploadH.Upload)
	reports.POST("/upload/batch", uploadH.UploadBatch)
	reports.GET("/upload/sample", uploadH.Sample)
	reports.GET("", reportH.List)
	reports.GET("/export", reportH.Export)
	reports.GET("/pan/:pan", reportH.GetByPAN)
	reports.GET("/:id", reportH.GetByID)
	reports.DELETE("/:id", reportH.Delete)

	stats := v1.Group("/stats")
	stats.GET("/summary", statsH.Summary)
	stats.GET("/score-distribution", statsH.ScoreDistribution)

	return r
}
