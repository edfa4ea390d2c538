package spatial

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// HaversineDistance calculates the great-circle distance between two points in meters
// using the Haversine formula
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Anchor measures proximity to a fixed point of interest. The point is set at
// construction and never changes, so distance is a pure function of the input.
type Anchor struct {
	poi Point
}

// NewAnchor creates an anchor at the given point of interest.
func NewAnchor(poi Point) (*Anchor, error) {
	if err := poi.Validate(); err != nil {
		return nil, fmt.Errorf("point of interest: %w", err)
	}
	return &Anchor{poi: poi}, nil
}

// POI returns the anchor's point of interest.
func (a *Anchor) POI() Point {
	return a.poi
}

// DistanceKm returns the great-circle distance in kilometers from p to the
// point of interest. A point identical to the POI yields 0.
func (a *Anchor) DistanceKm(p Point) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return HaversineDistance(p.Lat, p.Lon, a.poi.Lat, a.poi.Lon) / 1000.0, nil
}

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)
