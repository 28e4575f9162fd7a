package entity

import "math"

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewGeoPoint returns a point after checking it lies on the globe.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, bool) {
	p := GeoPoint{Latitude: latitude, Longitude: longitude}

	return p, p.IsValid()
}

// IsValid reports whether both components are finite and within range.
func (p GeoPoint) IsValid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return false
	}
	if math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return false
	}

	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// Ptr returns a copy of p on the heap.
func (p GeoPoint) Ptr() *GeoPoint {
	return &p
}
