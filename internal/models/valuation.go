package models

// ValuationRequest is the input boundary for one appraisal: the property's
// attributes plus the investor's return assumptions. Numeric fields are
// validated in the service layer, where zero values are legal inputs.
type ValuationRequest struct {
	Neighbourhood   string  `json:"neighbourhood" binding:"required"`
	RoomType        string  `json:"room_type" binding:"required"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Bedrooms        int     `json:"bedrooms"`
	Bathrooms       float64 `json:"bathrooms"`
	Accommodates    int     `json:"accommodates"`
	NumberOfReviews int     `json:"number_of_reviews"`
	ReviewScore     float64 `json:"review_score"`
	HasWifi         bool    `json:"has_wifi"`
	HasKitchen      bool    `json:"has_kitchen"`
	HasFreeParking  bool    `json:"has_free_parking"`
	HasAirCon       bool    `json:"has_air_conditioning"`

	Assumptions ROIAssumptions `json:"assumptions"`
}

// Listing converts the request into the shared listing shape.
func (r *ValuationRequest) Listing() Listing {
	return Listing{
		Neighbourhood:   r.Neighbourhood,
		RoomType:        r.RoomType,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		Bedrooms:        r.Bedrooms,
		Bathrooms:       r.Bathrooms,
		Accommodates:    r.Accommodates,
		NumberOfReviews: r.NumberOfReviews,
		ReviewScore:     r.ReviewScore,
		HasWifi:         r.HasWifi,
		HasKitchen:      r.HasKitchen,
		HasFreeParking:  r.HasFreeParking,
		HasAirCon:       r.HasAirCon,
	}
}

// Prediction is the model's output for one feature vector.
type Prediction struct {
	NightlyRate  float64 `json:"nightly_rate"`
	ModelVersion string  `json:"model_version"`
}

// ValuationResponse is the output boundary: the predicted rate, the derived
// return figures, and the location context used to produce them.
type ValuationResponse struct {
	Prediction Prediction `json:"prediction"`
	ROI        ROIResult  `json:"roi"`
	DistanceKm float64    `json:"distance_to_poi_km"`
	Strategy   string     `json:"location_strategy"`
}
