package entity

import "time"

// DeliveryZone is the circular area the store delivers to.
type DeliveryZone struct {
	Center   GeoPoint `json:"center"`
	RadiusKm float64  `json:"radius_km"`
	// Source tells whether the zone came from a persisted record or the configured default.
	Source ZoneSource `json:"source"`
}

type ZoneSource string

const (
	ZoneSourceDefault   ZoneSource = "default"
	ZoneSourcePersisted ZoneSource = "persisted"
)

// IsUsable reports whether the zone can be used for eligibility checks.
func (z DeliveryZone) IsUsable() bool {
	return z.Center.IsValid() && z.RadiusKm > 0
}

// DeliveryZoneRecord is the persisted store setting that overrides the default zone.
type DeliveryZoneRecord struct {
	ID               int64
	CenterLatitude   float64
	CenterLongitude  float64
	DeliveryRadiusKm float64
	IsActive         bool
	UpdatedAt        time.Time
}

// Zone converts the record into a DeliveryZone.
func (r *DeliveryZoneRecord) Zone() DeliveryZone {
	return DeliveryZone{
		Center:   GeoPoint{Latitude: r.CenterLatitude, Longitude: r.CenterLongitude},
		RadiusKm: r.DeliveryRadiusKm,
		Source:   ZoneSourcePersisted,
	}
}
