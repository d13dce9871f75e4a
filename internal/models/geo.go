package models

import "fmt"

// Coordinate is a WGS84 (SRID 4326) longitude/latitude pair.
// Both fields are required; pointers distinguish "absent" from zero,
// since (0, 0) is a valid point in the Gulf of Guinea.
type Coordinate struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// Validate checks that both components are present and within WGS84 ranges.
func (c *Coordinate) Validate() error {
	if c.Longitude == nil || c.Latitude == nil {
		return ErrMissingLocation
	}

	if *c.Longitude < -180 || *c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", *c.Longitude)
	}

	if *c.Latitude < -90 || *c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", *c.Latitude)
	}

	return nil
}

// Lon returns the longitude value. Validate must have been called first.
func (c *Coordinate) Lon() float64 { return *c.Longitude }

// Lat returns the latitude value. Validate must have been called first.
func (c *Coordinate) Lat() float64 { return *c.Latitude }

// NewCoordinate builds a Coordinate from plain values.
func NewCoordinate(lon, lat float64) Coordinate {
	return Coordinate{Longitude: &lon, Latitude: &lat}
}

// RadiusQuery selects points within radius_meters of center,
// measured as geodesic distance on the geography cast.
type RadiusQuery struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
}

// defaultRadiusMeters is applied when the payload omits radius_meters.
const defaultRadiusMeters = 100.0

// Validate checks the center coordinate and radius, applying the default radius.
func (q *RadiusQuery) Validate() error {
	if err := q.Center.Validate(); err != nil {
		return fmt.Errorf("center: %w", err)
	}

	if q.RadiusMeters == 0 {
		q.RadiusMeters = defaultRadiusMeters
	}

	if q.RadiusMeters < 0 {
		return fmt.Errorf("radius_meters must be positive, got %v", q.RadiusMeters)
	}

	return nil
}

// BBoxQuery selects points inside an axis-aligned envelope given by two
// opposite corners. The envelope is always built from
// (top_left.lon, bottom_right.lat) to (bottom_right.lon, top_left.lat),
// matching a northwest/southeast corner convention.
type BBoxQuery struct {
	TopLeft     Coordinate `json:"top_left"`
	BottomRight Coordinate `json:"bottom_right"`
}

// Validate checks both corner coordinates.
func (q *BBoxQuery) Validate() error {
	if err := q.TopLeft.Validate(); err != nil {
		return fmt.Errorf("top_left: %w", err)
	}

	if err := q.BottomRight.Validate(); err != nil {
		return fmt.Errorf("bottom_right: %w", err)
	}

	return nil
}
