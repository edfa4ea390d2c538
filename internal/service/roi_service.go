package service

import (
	"fmt"

	"github.com/capitolstays/valuation-backend-go/internal/config"
	"github.com/capitolstays/valuation-backend-go/internal/models"
)

// ROIService turns a predicted nightly rate and investor assumptions into an
// annualized return figure. Every computation is a pure function of its
// inputs; no rounding is applied here.
type ROIService struct {
	cfg config.ROIConfig
}

// NewROIService creates a new ROI service
func NewROIService(cfg config.ROIConfig) *ROIService {
	return &ROIService{cfg: cfg}
}

// Compute derives the return record from explicit inputs.
//
//	gross = rate * nights
//	net   = gross - operating cost
//	roi%  = net / purchase price * 100
//
// A negative ROI is a legitimate loss scenario, not an error.
func (s *ROIService) Compute(predictedRate, occupancyNights, purchasePrice, annualOperatingCost float64) (*models.ROIResult, error) {
	if occupancyNights < 0 || occupancyNights > 365 {
		return nil, fmt.Errorf("%w: occupancy nights %.1f outside [0, 365]", models.ErrInvalidAssumption, occupancyNights)
	}
	if purchasePrice <= 0 {
		return nil, fmt.Errorf("%w: purchase price must be positive, got %.2f", models.ErrInvalidAssumption, purchasePrice)
	}
	if annualOperatingCost < 0 {
		return nil, fmt.Errorf("%w: operating cost must be non-negative, got %.2f", models.ErrInvalidAssumption, annualOperatingCost)
	}

	gross := predictedRate * occupancyNights
	net := gross - annualOperatingCost

	return &models.ROIResult{
		OccupancyNights:    occupancyNights,
		GrossAnnualRevenue: gross,
		NetAnnualReturn:    net,
		ROIPercentage:      net / purchasePrice * 100,
		CapRateValuation:   gross * s.cfg.CapRateYears,
	}, nil
}

// ComputeFromAssumptions resolves the occupancy input (explicit nights, an
// occupancy fraction, or the configured default) and computes the return.
func (s *ROIService) ComputeFromAssumptions(predictedRate float64, a models.ROIAssumptions) (*models.ROIResult, error) {
	nights, err := s.resolveNights(a)
	if err != nil {
		return nil, err
	}
	return s.Compute(predictedRate, nights, a.PurchasePrice, a.AnnualOperatingCost)
}

func (s *ROIService) resolveNights(a models.ROIAssumptions) (float64, error) {
	switch {
	case a.OccupancyNights != nil && a.OccupancyRate != nil:
		return 0, fmt.Errorf("%w: supply occupancy nights or occupancy rate, not both", models.ErrInvalidAssumption)
	case a.OccupancyNights != nil:
		return *a.OccupancyNights, nil
	case a.OccupancyRate != nil:
		if *a.OccupancyRate < 0 || *a.OccupancyRate > 1 {
			return 0, fmt.Errorf("%w: occupancy rate %.2f outside [0, 1]", models.ErrInvalidAssumption, *a.OccupancyRate)
		}
		return *a.OccupancyRate * 365, nil
	default:
		return s.cfg.DefaultOccupancyRate * 365, nil
	}
}
