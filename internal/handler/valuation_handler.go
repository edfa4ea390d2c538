package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capitolstays/valuation-backend-go/internal/forest"
	"github.com/capitolstays/valuation-backend-go/internal/models"
	"github.com/capitolstays/valuation-backend-go/internal/service"
	"github.com/capitolstays/valuation-backend-go/internal/spatial"
	"github.com/capitolstays/valuation-backend-go/pkg/response"
)

// ValuationHandler handles HTTP requests for appraisals
type ValuationHandler struct {
	valuationService *service.ValuationService
}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler(valuationService *service.ValuationService) *ValuationHandler {
	return &ValuationHandler{
		valuationService: valuationService,
	}
}

// Appraise handles POST /api/v1/valuations
func (h *ValuationHandler) Appraise(c *gin.Context) {
	var req models.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.valuationService.Appraise(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, result)
}

// writeError maps pipeline failures onto HTTP statuses. Domain validation
// failures are the client's problem; everything else is ours.
func (h *ValuationHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, spatial.ErrInvalidCoordinate),
		errors.Is(err, models.ErrInvalidAssumption),
		errors.Is(err, forest.ErrFeatureShapeMismatch):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, service.ErrModelNotReady):
		response.Error(c, http.StatusServiceUnavailable, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
