package models

import "errors"

// ErrInvalidAssumption is returned when a user-supplied assumption or
// attribute cannot produce a meaningful result (non-positive purchase price,
// occupancy outside a calendar year, unknown category, negative count).
var ErrInvalidAssumption = errors.New("invalid assumption")

// ROIAssumptions carries the investor inputs for the return calculation.
// Occupancy fields are pointers so an explicit zero survives binding; when
// neither is supplied the configured default occupancy rate applies.
type ROIAssumptions struct {
	OccupancyNights     *float64 `json:"occupancy_nights,omitempty"`
	OccupancyRate       *float64 `json:"occupancy_rate,omitempty"`
	PurchasePrice       float64  `json:"purchase_price"`
	AnnualOperatingCost float64  `json:"annual_operating_cost"`
}

// ROIResult is the derived return record. No rounding is applied; formatting
// belongs to the presentation layer. Recomputed per query, never persisted.
type ROIResult struct {
	OccupancyNights    float64 `json:"occupancy_nights"`
	GrossAnnualRevenue float64 `json:"gross_annual_revenue"`
	NetAnnualReturn    float64 `json:"net_annual_return"`
	ROIPercentage      float64 `json:"roi_percentage"`
	CapRateValuation   float64 `json:"cap_rate_valuation"`
}
