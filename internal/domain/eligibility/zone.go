package eligibility

import (
	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// ZoneBound returns the bounding box that encloses zone. The radius is scaled to
// orb's sphere so the box covers the same angular distance DistanceKm uses.
func ZoneBound(zone entity.DeliveryZone) orb.Bound {
	angular := zone.RadiusKm / EarthRadiusKm

	return geo.NewBoundAroundPoint(toOrbPoint(zone.Center), angular*orb.EarthRadius)
}

// ZoneFeature renders zone as a GeoJSON point feature that map clients draw as a circle.
func ZoneFeature(zone entity.DeliveryZone) *geojson.Feature {
	feature := geojson.NewFeature(toOrbPoint(zone.Center))
	feature.Properties["radius_km"] = zone.RadiusKm
	feature.Properties["radius_m"] = zone.RadiusKm * 1000
	feature.Properties["source"] = string(zone.Source)
	feature.BBox = geojson.NewBBox(ZoneBound(zone))

	return feature
}

// orb points are (lng, lat).
func toOrbPoint(p entity.GeoPoint) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}
