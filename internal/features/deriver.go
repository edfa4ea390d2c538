// Package features turns listing attributes into the fixed-order numeric
// vectors the valuation model consumes. Derivation is deterministic: the same
// listing and the same configured point of interest always produce the same
// vector.
package features

import (
	"fmt"

	"github.com/capitolstays/valuation-backend-go/internal/models"
	"github.com/capitolstays/valuation-backend-go/internal/spatial"
)

// Vector is the ordered numeric encoding of one listing.
type Vector []float64

// Names lists the feature columns in vector order. Categorical attributes are
// encoded as ordinal codes against the configured category lists; amenity
// flags become 0/1.
var Names = []string{
	"bedrooms",
	"bathrooms",
	"accommodates",
	"number_of_reviews",
	"review_score",
	"dist_to_poi_km",
	"room_type",
	"neighbourhood",
	"has_wifi",
	"has_kitchen",
	"has_free_parking",
	"has_air_conditioning",
}

// distIndex is the position of the derived distance feature within Names.
const distIndex = 5

// Deriver converts listings into feature vectors. The point of interest, the
// metro bounding box, and the category vocabularies are fixed at construction.
type Deriver struct {
	anchor         *spatial.Anchor
	bounds         spatial.BoundingBox
	roomTypes      map[string]int
	neighbourhoods map[string]int
}

// NewDeriver builds a deriver for one metropolitan area.
func NewDeriver(poi spatial.Point, bounds spatial.BoundingBox, roomTypes, neighbourhoods []string) (*Deriver, error) {
	anchor, err := spatial.NewAnchor(poi)
	if err != nil {
		return nil, err
	}
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("bounding box: %w", err)
	}
	if len(roomTypes) == 0 || len(neighbourhoods) == 0 {
		return nil, fmt.Errorf("%w: empty category vocabulary", models.ErrInvalidAssumption)
	}

	d := &Deriver{
		anchor:         anchor,
		bounds:         bounds,
		roomTypes:      make(map[string]int, len(roomTypes)),
		neighbourhoods: make(map[string]int, len(neighbourhoods)),
	}
	for i, rt := range roomTypes {
		d.roomTypes[rt] = i
	}
	for i, n := range neighbourhoods {
		d.neighbourhoods[n] = i
	}
	return d, nil
}

// Width returns the number of features per vector.
func (d *Deriver) Width() int {
	return len(Names)
}

// DistanceKm returns the great-circle distance from the coordinate to the
// configured point of interest.
func (d *Deriver) DistanceKm(lat, lon float64) (float64, error) {
	return d.anchor.DistanceKm(spatial.Point{Lat: lat, Lon: lon})
}

// Derive validates the listing and encodes it. Unknown categories and
// negative counts are rejected, never imputed.
func (d *Deriver) Derive(l models.Listing) (Vector, error) {
	p := spatial.Point{Lat: l.Latitude, Lon: l.Longitude}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !d.bounds.Contains(p) {
		return nil, fmt.Errorf("%w: (%.6f, %.6f) outside metro area", spatial.ErrInvalidCoordinate, l.Latitude, l.Longitude)
	}
	if l.Bedrooms < 0 || l.Bathrooms < 0 || l.Accommodates < 0 || l.NumberOfReviews < 0 {
		return nil, fmt.Errorf("%w: negative attribute count", models.ErrInvalidAssumption)
	}
	if l.ReviewScore < 0 || l.ReviewScore > 5 {
		return nil, fmt.Errorf("%w: review score %.2f outside [0, 5]", models.ErrInvalidAssumption, l.ReviewScore)
	}
	roomCode, ok := d.roomTypes[l.RoomType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown room type %q", models.ErrInvalidAssumption, l.RoomType)
	}
	hoodCode, ok := d.neighbourhoods[l.Neighbourhood]
	if !ok {
		return nil, fmt.Errorf("%w: unknown neighbourhood %q", models.ErrInvalidAssumption, l.Neighbourhood)
	}

	dist, err := d.anchor.DistanceKm(p)
	if err != nil {
		return nil, err
	}

	v := make(Vector, len(Names))
	v[0] = float64(l.Bedrooms)
	v[1] = l.Bathrooms
	v[2] = float64(l.Accommodates)
	v[3] = float64(l.NumberOfReviews)
	v[4] = l.ReviewScore
	v[distIndex] = dist
	v[6] = float64(roomCode)
	v[7] = float64(hoodCode)
	v[8] = boolFeature(l.HasWifi)
	v[9] = boolFeature(l.HasKitchen)
	v[10] = boolFeature(l.HasFreeParking)
	v[11] = boolFeature(l.HasAirCon)
	return v, nil
}

// DistanceOf extracts the derived distance feature from a vector.
func DistanceOf(v Vector) float64 {
	if len(v) <= distIndex {
		return 0
	}
	return v[distIndex]
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
