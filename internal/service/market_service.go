package service

import (
	"fmt"

	"github.com/capitolstays/valuation-backend-go/internal/models"
	"github.com/capitolstays/valuation-backend-go/internal/repository"
	"github.com/capitolstays/valuation-backend-go/internal/stats"
)

// MarketService summarizes the training corpus for the reporting endpoints.
type MarketService struct {
	listings *repository.ListingRepository
}

// NewMarketService creates a new market service
func NewMarketService(listings *repository.ListingRepository) *MarketService {
	return &MarketService{listings: listings}
}

// Summary describes the corpus: size, price quantiles, and per-neighbourhood
// aggregates.
func (s *MarketService) Summary() (*models.MarketSummary, error) {
	count, err := s.listings.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to get market summary: %w", err)
	}

	prices, err := s.listings.Prices()
	if err != nil {
		return nil, fmt.Errorf("failed to get market summary: %w", err)
	}

	neighbourhoods, err := s.listings.NeighbourhoodSummaries()
	if err != nil {
		return nil, fmt.Errorf("failed to get market summary: %w", err)
	}

	return &models.MarketSummary{
		Listings:       count,
		MedianPrice:    stats.Median(prices),
		PriceP25:       stats.Quantile(prices, 0.25),
		PriceP75:       stats.Quantile(prices, 0.75),
		Neighbourhoods: neighbourhoods,
	}, nil
}
