package eligibility

import (
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultZone = entity.DeliveryZone{Center: beirut, RadiusKm: 15, Source: entity.ZoneSourceDefault}

func TestIsWithinDeliveryZone_BoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	point := northOf(beirut, 15)
	exact := entity.DeliveryZone{Center: beirut, RadiusKm: DistanceKm(point, beirut)}

	assert.True(t, IsWithinDeliveryZone(point, exact))

	justShort := entity.DeliveryZone{Center: beirut, RadiusKm: exact.RadiusKm - 1e-9}
	assert.False(t, IsWithinDeliveryZone(point, justShort))
}

func TestIsWithinDeliveryZone_DefaultZone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		km   float64
		want bool
	}{
		{name: "center", km: 0, want: true},
		{name: "5 km away", km: 5, want: true},
		{name: "14.9 km away", km: 14.9, want: true},
		{name: "15.1 km away", km: 15.1, want: false},
		{name: "20 km away", km: 20, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsWithinDeliveryZone(northOf(beirut, tt.km), defaultZone))
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("nil point is unknown", func(t *testing.T) {
		t.Parallel()

		eval := Evaluate(nil, defaultZone)
		assert.Equal(t, entity.VerdictUnknown, eval.Verdict)
		assert.Nil(t, eval.DistanceKm)
		assert.False(t, IsOutsideWarning(eval))
	})

	t.Run("inside carries distance", func(t *testing.T) {
		t.Parallel()

		eval := Evaluate(northOf(beirut, 5).Ptr(), defaultZone)
		assert.Equal(t, entity.VerdictEligible, eval.Verdict)
		require.NotNil(t, eval.DistanceKm)
		assert.InDelta(t, 5, *eval.DistanceKm, 1e-6)
		assert.False(t, IsOutsideWarning(eval))
	})

	t.Run("outside warns", func(t *testing.T) {
		t.Parallel()

		eval := Evaluate(northOf(beirut, 20).Ptr(), defaultZone)
		assert.Equal(t, entity.VerdictIneligible, eval.Verdict)
		assert.True(t, IsOutsideWarning(eval))
	})
}

func TestEvaluateAddress_WithoutLocationIsUnknown(t *testing.T) {
	t.Parallel()

	addr := &entity.Address{ID: uuid.New(), FullAddress: "Hamra St", City: "Beirut"}

	assert.Equal(t, entity.VerdictUnknown, EvaluateAddress(addr, defaultZone).Verdict)
}

func TestCheckoutGate(t *testing.T) {
	t.Parallel()

	located := &entity.Address{ID: uuid.New(), Location: northOf(beirut, 20).Ptr()}
	unlocated := &entity.Address{ID: uuid.New()}

	tests := []struct {
		name     string
		selected *entity.Address
		verdict  entity.Verdict
		wantErr  error
	}{
		{name: "no address selected", selected: nil, verdict: entity.VerdictEligible, wantErr: ErrNoAddressSelected},
		{name: "located and eligible", selected: located, verdict: entity.VerdictEligible},
		{name: "located and ineligible", selected: located, verdict: entity.VerdictIneligible, wantErr: ErrOutsideDeliveryArea},
		{name: "located but never evaluated", selected: located, verdict: entity.VerdictUnknown, wantErr: ErrOutsideDeliveryArea},
		{name: "no coordinates with unknown verdict", selected: unlocated, verdict: entity.VerdictUnknown},
		{name: "no coordinates ignores stale ineligible", selected: unlocated, verdict: entity.VerdictIneligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckoutGate(tt.selected, tt.verdict)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
