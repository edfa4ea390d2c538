// Package dataset loads the cleaned training corpus. Cleaning itself
// (currency normalization, null handling) happens upstream; this loader only
// enforces the schema contract and fails fast when it is broken.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/capitolstays/valuation-backend-go/internal/models"
)

// ErrSchemaMismatch is returned when the corpus header or a cell does not
// match the expected schema. Loading never silently skips or coerces rows.
var ErrSchemaMismatch = errors.New("schema mismatch")

// Columns the cleaned corpus must carry. Extra columns are ignored.
var requiredColumns = []string{
	"neighbourhood",
	"room_type",
	"latitude",
	"longitude",
	"bedrooms",
	"bathrooms",
	"accommodates",
	"number_of_reviews",
	"review_score",
	"has_wifi",
	"has_kitchen",
	"has_free_parking",
	"has_air_conditioning",
	"price",
}

// LoadFile reads the corpus CSV at path.
func LoadFile(path string) ([]models.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a corpus from r. The first record must be a header naming every
// required column; each following record becomes one listing.
func Load(r io.Reader) ([]models.Listing, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrSchemaMismatch, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchemaMismatch, name)
		}
	}

	var listings []models.Listing
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrSchemaMismatch, row, err)
		}
		row++

		l, err := parseRow(record, cols, row)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, nil
}

func parseRow(record []string, cols map[string]int, row int) (models.Listing, error) {
	p := rowParser{record: record, cols: cols, row: row}

	l := models.Listing{
		Neighbourhood:   p.str("neighbourhood"),
		RoomType:        p.str("room_type"),
		Latitude:        p.float("latitude"),
		Longitude:       p.float("longitude"),
		Bedrooms:        p.int("bedrooms"),
		Bathrooms:       p.float("bathrooms"),
		Accommodates:    p.int("accommodates"),
		NumberOfReviews: p.int("number_of_reviews"),
		ReviewScore:     p.float("review_score"),
		HasWifi:         p.bool("has_wifi"),
		HasKitchen:      p.bool("has_kitchen"),
		HasFreeParking:  p.bool("has_free_parking"),
		HasAirCon:       p.bool("has_air_conditioning"),
		Price:           p.float("price"),
	}
	if p.err != nil {
		return models.Listing{}, p.err
	}
	return l, nil
}

// rowParser accumulates the first cell-level error so parseRow stays flat.
type rowParser struct {
	record []string
	cols   map[string]int
	row    int
	err    error
}

func (p *rowParser) cell(name string) string {
	i := p.cols[name]
	if i >= len(p.record) {
		p.fail(name, "missing cell")
		return ""
	}
	return p.record[i]
}

func (p *rowParser) str(name string) string {
	return p.cell(name)
}

func (p *rowParser) float(name string) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(p.cell(name), 64)
	if err != nil && p.err == nil {
		p.fail(name, "not a number")
	}
	return v
}

func (p *rowParser) int(name string) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(p.cell(name))
	if err != nil && p.err == nil {
		p.fail(name, "not an integer")
	}
	return v
}

func (p *rowParser) bool(name string) bool {
	if p.err != nil {
		return false
	}
	v, err := strconv.ParseBool(p.cell(name))
	if err != nil && p.err == nil {
		p.fail(name, "not a boolean")
	}
	return v
}

func (p *rowParser) fail(column, reason string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: row %d column %q: %s", ErrSchemaMismatch, p.row, column, reason)
	}
}
