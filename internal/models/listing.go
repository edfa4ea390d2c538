package models

// Listing holds the attributes of one short-term-rental property in the
// metropolitan area. Rows of the cleaned corpus and live appraisal requests
// share this shape; Price carries the observed nightly rate and is only
// populated for corpus rows.
type Listing struct {
	ID              int64   `json:"id,omitempty"`
	Neighbourhood   string  `json:"neighbourhood"`
	RoomType        string  `json:"room_type"`
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
	Price           float64 `json:"price,omitempty"`
}

// NeighbourhoodSummary aggregates the corpus per neighbourhood for the
// market summary endpoint.
type NeighbourhoodSummary struct {
	Neighbourhood string  `json:"neighbourhood"`
	Listings      int     `json:"listings"`
	MeanPrice     float64 `json:"mean_price"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
}

// MarketSummary describes the training corpus as a whole.
type MarketSummary struct {
	Listings       int                    `json:"listings"`
	MedianPrice    float64                `json:"median_price"`
	PriceP25       float64                `json:"price_p25"`
	PriceP75       float64                `json:"price_p75"`
	Neighbourhoods []NeighbourhoodSummary `json:"neighbourhoods"`
}
