package session

import (
	"context"
	"os"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCodec_RoundTripKeepsSelection(t *testing.T) {
	addressID := uuid.New()
	distance := 4.2
	session := entity.NewDeliverySession(uuid.New())
	session.Select(&addressID)
	session.ApplyEvaluation(entity.Evaluation{Verdict: entity.VerdictEligible, DistanceKm: &distance})

	raw, err := encodeSession(session)
	require.NoError(t, err)

	decoded, err := decodeSession(raw)
	require.NoError(t, err)
	assert.True(t, decoded.IsSelected(addressID))
	assert.Equal(t, session.Generation, decoded.Generation)
	require.NotNil(t, decoded.DistanceKm)
	assert.InDelta(t, 4.2, *decoded.DistanceKm, 1e-9)
}

func TestSessionCodec_MissingVerdictIsUnknown(t *testing.T) {
	decoded, err := decodeSession([]byte(`{"generation":3}`))

	require.NoError(t, err)
	assert.Equal(t, entity.VerdictUnknown, decoded.Verdict)
}

func TestSessionKey(t *testing.T) {
	userID := uuid.MustParse("7d2c1f0e-3b4a-4c5d-8e9f-0a1b2c3d4e5f")

	assert.Equal(t, "storefront:delivery_session:7d2c1f0e-3b4a-4c5d-8e9f-0a1b2c3d4e5f", sessionKey(userID))
}

// Runs against a real server when TEST_REDIS_URL is set.
func TestRedisStore_Update(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	defer client.Close()

	store := NewRedisStore(client, time.Minute)
	userID := uuid.New()
	addressID := uuid.New()
	ctx := context.Background()
	defer func() { _ = store.Delete(ctx, userID) }()

	_, err = store.Update(ctx, userID, func(s *entity.DeliverySession) error {
		s.Select(&addressID)

		return nil
	})
	require.NoError(t, err)

	session, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.True(t, session.IsSelected(addressID))
	assert.Equal(t, uint64(1), session.Generation)
}
