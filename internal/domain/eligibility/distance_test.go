package eligibility

import (
	"math"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
)

var beirut = entity.GeoPoint{Latitude: 33.8938, Longitude: 35.5018}

// northOf moves p north by km along its meridian.
func northOf(p entity.GeoPoint, km float64) entity.GeoPoint {
	return entity.GeoPoint{Latitude: p.Latitude + km/EarthRadiusKm*180/math.Pi, Longitude: p.Longitude}
}

func TestDistanceKm_Identity(t *testing.T) {
	t.Parallel()

	points := []entity.GeoPoint{
		beirut,
		{Latitude: 0, Longitude: 0},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 89.9, Longitude: -179.9},
	}

	for _, p := range points {
		assert.Zero(t, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]entity.GeoPoint{
		{beirut, {Latitude: 33.9938, Longitude: 35.5018}},
		{{Latitude: 25.0330, Longitude: 121.5654}, {Latitude: 25.0425, Longitude: 121.5649}},
		{{Latitude: -33.8688, Longitude: 151.2093}, {Latitude: 51.5074, Longitude: -0.1278}},
	}

	for _, pair := range pairs {
		assert.InDelta(t, DistanceKm(pair[0], pair[1]), DistanceKm(pair[1], pair[0]), 1e-9)
	}
}

func TestDistanceKm_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		a, b      entity.GeoPoint
		want      float64
		tolerance float64
	}{
		{name: "default center to itself", a: beirut, b: beirut, want: 0, tolerance: 0},
		{name: "a tenth of a degree north", a: beirut, b: entity.GeoPoint{Latitude: 33.9938, Longitude: 35.5018}, want: 11.1, tolerance: 0.5},
		{name: "antipodal points", a: entity.GeoPoint{Latitude: 0, Longitude: 0}, b: entity.GeoPoint{Latitude: 0, Longitude: 180}, want: math.Pi * EarthRadiusKm, tolerance: 1e-6},
		{name: "pole to pole", a: entity.GeoPoint{Latitude: 90, Longitude: 0}, b: entity.GeoPoint{Latitude: -90, Longitude: 0}, want: 20015.1, tolerance: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, DistanceKm(tt.a, tt.b), tt.tolerance)
		})
	}
}

func TestDistanceKm_AgreesWithOrbHaversine(t *testing.T) {
	t.Parallel()

	a := entity.GeoPoint{Latitude: 33.8938, Longitude: 35.5018}
	b := entity.GeoPoint{Latitude: 34.4367, Longitude: 35.8497}

	ours := DistanceKm(a, b)
	// orb uses the WGS84 equatorial radius, so allow for the radius ratio.
	theirs := geo.DistanceHaversine(orb.Point{a.Longitude, a.Latitude}, orb.Point{b.Longitude, b.Latitude}) / 1000

	assert.InEpsilon(t, theirs, ours, 0.002)
}

func TestDistanceKm_UnvalidatedInputStillComputes(t *testing.T) {
	t.Parallel()

	d := DistanceKm(entity.GeoPoint{Latitude: 120, Longitude: 0}, beirut)

	assert.False(t, math.IsNaN(d))
}
