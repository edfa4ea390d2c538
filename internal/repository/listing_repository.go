package repository

import (
	"database/sql"
	"fmt"

	"github.com/capitolstays/valuation-backend-go/internal/database"
	"github.com/capitolstays/valuation-backend-go/internal/models"
)

// ListingRepository handles database operations for the training corpus
type ListingRepository struct {
	db *sql.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// ReplaceAll imports a fresh corpus, discarding any previous one. The corpus
// is loaded once at startup; incremental updates are not supported.
func (r *ListingRepository) ReplaceAll(listings []models.Listing) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM listings"); err != nil {
			return fmt.Errorf("failed to clear listings: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO listings (
				neighbourhood, room_type, latitude, longitude,
				bedrooms, bathrooms, accommodates,
				number_of_reviews, review_score,
				has_wifi, has_kitchen, has_free_parking, has_air_conditioning,
				price
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare listing insert: %w", err)
		}
		defer stmt.Close()

		for i := range listings {
			l := &listings[i]
			res, err := stmt.Exec(
				l.Neighbourhood, l.RoomType, l.Latitude, l.Longitude,
				l.Bedrooms, l.Bathrooms, l.Accommodates,
				l.NumberOfReviews, l.ReviewScore,
				l.HasWifi, l.HasKitchen, l.HasFreeParking, l.HasAirCon,
				l.Price,
			)
			if err != nil {
				return fmt.Errorf("failed to insert listing: %w", err)
			}
			if id, err := res.LastInsertId(); err == nil {
				l.ID = id
			}
		}
		return nil
	})
}

// List retrieves the full corpus.
func (r *ListingRepository) List() ([]models.Listing, error) {
	query := `
		SELECT id, neighbourhood, room_type, latitude, longitude,
			   bedrooms, bathrooms, accommodates,
			   number_of_reviews, review_score,
			   has_wifi, has_kitchen, has_free_parking, has_air_conditioning,
			   price
		FROM listings
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(
			&l.ID, &l.Neighbourhood, &l.RoomType, &l.Latitude, &l.Longitude,
			&l.Bedrooms, &l.Bathrooms, &l.Accommodates,
			&l.NumberOfReviews, &l.ReviewScore,
			&l.HasWifi, &l.HasKitchen, &l.HasFreeParking, &l.HasAirCon,
			&l.Price,
		); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// Count returns the corpus size.
func (r *ListingRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM listings").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// Prices returns every observed nightly rate in the corpus.
func (r *ListingRepository) Prices() ([]float64, error) {
	rows, err := r.db.Query("SELECT price FROM listings")
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	var prices []float64
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		prices = append(prices, p)
	}

	return prices, rows.Err()
}

// NeighbourhoodSummaries aggregates the corpus per neighbourhood.
func (r *ListingRepository) NeighbourhoodSummaries() ([]models.NeighbourhoodSummary, error) {
	query := `
		SELECT neighbourhood, COUNT(*), AVG(price), MIN(price), MAX(price)
		FROM listings
		GROUP BY neighbourhood
		ORDER BY COUNT(*) DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query neighbourhood summaries: %w", err)
	}
	defer rows.Close()

	var summaries []models.NeighbourhoodSummary
	for rows.Next() {
		var s models.NeighbourhoodSummary
		if err := rows.Scan(&s.Neighbourhood, &s.Listings, &s.MeanPrice, &s.MinPrice, &s.MaxPrice); err != nil {
			return nil, fmt.Errorf("failed to scan neighbourhood summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
