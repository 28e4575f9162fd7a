package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := jwtService.IssueToken(userID, []string{"customer"}, time.Hour)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"customer"}, claims.Roles)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_AcceptsProviderStyleToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": "authenticated",
		"aud":  "authenticated",
		"exp":  time.Now().Add(10 * time.Minute).Unix(),
	})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"authenticated"}, claims.Roles)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	otherService, err := NewJWTService(newTestConfig("another_secret_key_that_is_long_enough"))
	require.NoError(t, err)
	foreign, err := otherService.IssueToken(uuid.New(), nil, time.Hour)
	require.NoError(t, err)

	expired, err := jwtService.IssueToken(uuid.New(), nil, -time.Hour)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "clearly-not-a-jwt-token-format",
		"wrong secret":   foreign,
		"expired":        expired,
		"no subject":     noSubject,
		"bad subject":    badSubject,
		"missing expiry": noExpiry,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))

	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
