package service

import (
	"errors"
	"math"
	"testing"

	"github.com/capitolstays/valuation-backend-go/internal/config"
	"github.com/capitolstays/valuation-backend-go/internal/models"
)

func testROIService() *ROIService {
	return NewROIService(config.ROIConfig{
		DefaultOccupancyRate: 0.65,
		CapRateYears:         15,
	})
}

func floatPtr(v float64) *float64 { return &v }

func TestComputeScenario(t *testing.T) {
	// $200/night, 180 nights, $500k purchase, $15k operating cost.
	s := testROIService()
	result, err := s.Compute(200, 180, 500000, 15000)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if result.GrossAnnualRevenue != 36000 {
		t.Errorf("gross = %f, want 36000", result.GrossAnnualRevenue)
	}
	if result.NetAnnualReturn != 21000 {
		t.Errorf("net = %f, want 21000", result.NetAnnualReturn)
	}
	if math.Abs(result.ROIPercentage-4.2) > 1e-9 {
		t.Errorf("roi%% = %f, want 4.2", result.ROIPercentage)
	}
	if result.CapRateValuation != 36000*15 {
		t.Errorf("cap-rate valuation = %f, want %f", result.CapRateValuation, 36000.0*15)
	}
}

func TestComputeZeroOccupancy(t *testing.T) {
	s := testROIService()
	result, err := s.Compute(200, 0, 500000, 15000)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if result.GrossAnnualRevenue != 0 {
		t.Errorf("gross = %f, want 0", result.GrossAnnualRevenue)
	}
	if result.NetAnnualReturn != -15000 {
		t.Errorf("net = %f, want -15000 (operating cost only)", result.NetAnnualReturn)
	}
	if result.ROIPercentage >= 0 {
		t.Errorf("roi%% = %f, want negative loss scenario", result.ROIPercentage)
	}
}

func TestComputeLinearity(t *testing.T) {
	s := testROIService()

	base, err := s.Compute(100, 100, 400000, 0)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	doubleRate, _ := s.Compute(200, 100, 400000, 0)
	doubleNights, _ := s.Compute(100, 200, 400000, 0)

	if doubleRate.GrossAnnualRevenue != 2*base.GrossAnnualRevenue {
		t.Errorf("gross not linear in rate: %f vs %f", doubleRate.GrossAnnualRevenue, base.GrossAnnualRevenue)
	}
	if doubleNights.GrossAnnualRevenue != 2*base.GrossAnnualRevenue {
		t.Errorf("gross not linear in nights: %f vs %f", doubleNights.GrossAnnualRevenue, base.GrossAnnualRevenue)
	}
	if doubleRate.ROIPercentage != 2*base.ROIPercentage {
		t.Errorf("roi%% not linear in rate with zero operating cost")
	}
}

func TestComputeInvalidAssumptions(t *testing.T) {
	s := testROIService()

	cases := []struct {
		name                       string
		rate, nights, price, costs float64
	}{
		{"zero price", 200, 180, 0, 0},
		{"negative price", 200, 180, -1, 0},
		{"negative nights", 200, -1, 500000, 0},
		{"nights beyond year", 200, 366, 500000, 0},
		{"negative operating cost", 200, 180, 500000, -5},
	}
	for _, tc := range cases {
		if _, err := s.Compute(tc.rate, tc.nights, tc.price, tc.costs); !errors.Is(err, models.ErrInvalidAssumption) {
			t.Errorf("%s: error = %v, want ErrInvalidAssumption", tc.name, err)
		}
	}
}

func TestComputeFromAssumptionsOccupancyRate(t *testing.T) {
	s := testROIService()

	result, err := s.ComputeFromAssumptions(100, models.ROIAssumptions{
		OccupancyRate: floatPtr(0.5),
		PurchasePrice: 300000,
	})
	if err != nil {
		t.Fatalf("ComputeFromAssumptions: %v", err)
	}
	if result.OccupancyNights != 182.5 {
		t.Errorf("nights = %f, want 182.5", result.OccupancyNights)
	}
}

func TestComputeFromAssumptionsDefaultOccupancy(t *testing.T) {
	s := testROIService()

	result, err := s.ComputeFromAssumptions(100, models.ROIAssumptions{
		PurchasePrice: 300000,
	})
	if err != nil {
		t.Fatalf("ComputeFromAssumptions: %v", err)
	}
	if want := 0.65 * 365; result.OccupancyNights != want {
		t.Errorf("nights = %f, want default %f", result.OccupancyNights, want)
	}
}

func TestComputeFromAssumptionsConflict(t *testing.T) {
	s := testROIService()

	_, err := s.ComputeFromAssumptions(100, models.ROIAssumptions{
		OccupancyNights: floatPtr(180),
		OccupancyRate:   floatPtr(0.5),
		PurchasePrice:   300000,
	})
	if !errors.Is(err, models.ErrInvalidAssumption) {
		t.Errorf("both occupancy inputs: error = %v, want ErrInvalidAssumption", err)
	}

	_, err = s.ComputeFromAssumptions(100, models.ROIAssumptions{
		OccupancyRate: floatPtr(1.2),
		PurchasePrice: 300000,
	})
	if !errors.Is(err, models.ErrInvalidAssumption) {
		t.Errorf("occupancy rate > 1: error = %v, want ErrInvalidAssumption", err)
	}
}

func TestComputeExplicitZeroNights(t *testing.T) {
	s := testROIService()

	result, err := s.ComputeFromAssumptions(100, models.ROIAssumptions{
		OccupancyNights: floatPtr(0),
		PurchasePrice:   300000,
	})
	if err != nil {
		t.Fatalf("ComputeFromAssumptions: %v", err)
	}
	if result.OccupancyNights != 0 || result.GrossAnnualRevenue != 0 {
		t.Errorf("explicit zero nights not honored: %+v", result)
	}
}
