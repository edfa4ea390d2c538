package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/capitolstays/valuation-backend-go/internal/service"
	"github.com/capitolstays/valuation-backend-go/pkg/response"
)

// MarketHandler handles HTTP requests for corpus reporting
type MarketHandler struct {
	marketService *service.MarketService
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketService *service.MarketService) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// GetSummary handles GET /api/v1/market/summary
func (h *MarketHandler) GetSummary(c *gin.Context) {
	summary, err := h.marketService.Summary()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, summary)
}
