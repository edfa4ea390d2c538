package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/capitolstays/valuation-backend-go/internal/forest"
	"github.com/capitolstays/valuation-backend-go/internal/service"
	"github.com/capitolstays/valuation-backend-go/pkg/response"
)

// AdminHandler handles HTTP requests for model administration
type AdminHandler struct {
	valuationService *service.ValuationService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(valuationService *service.ValuationService) *AdminHandler {
	return &AdminHandler{
		valuationService: valuationService,
	}
}

// Retrain handles POST /api/v1/admin/retrain
func (h *AdminHandler) Retrain(c *gin.Context) {
	run, err := h.valuationService.Train()
	if err != nil {
		if errors.Is(err, forest.ErrInsufficientTrainingData) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, run)
}

// GetTrainingRuns handles GET /api/v1/admin/training-runs
func (h *AdminHandler) GetTrainingRuns(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	runs, err := h.valuationService.TrainingRuns(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  runs,
		"count": len(runs),
	})
}
