package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/capitolstays/valuation-backend-go/internal/config"
	"github.com/capitolstays/valuation-backend-go/internal/handler"
	"github.com/capitolstays/valuation-backend-go/internal/middleware"
	"github.com/capitolstays/valuation-backend-go/internal/service"
)

// SetupRouter wires the HTTP surface: health check, appraisal pipeline,
// market reporting, and the JWT-protected admin group.
func SetupRouter(
	cfg *config.Config,
	valuationService *service.ValuationService,
	marketService *service.MarketService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	if cfg.RateLimit.RequestsPerMinute > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMinute, time.Minute))
	}

	valuationHandler := handler.NewValuationHandler(valuationService)
	marketHandler := handler.NewMarketHandler(marketService)
	adminHandler := handler.NewAdminHandler(valuationService)

	r.GET("/health", func(c *gin.Context) {
		status := "ok"
		code := http.StatusOK
		if !valuationService.Ready() {
			status = "training"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status": status,
			"market": cfg.Market.Name,
		})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/valuations", valuationHandler.Appraise)

		market := api.Group("/market")
		{
			market.GET("/summary", marketHandler.GetSummary)
		}

		admin := api.Group("/admin", middleware.Auth(cfg.JWTSecret))
		{
			admin.POST("/retrain", adminHandler.Retrain)
			admin.GET("/training-runs", adminHandler.GetTrainingRuns)
		}
	}

	return r
}
