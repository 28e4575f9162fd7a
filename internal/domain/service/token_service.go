package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the identity carried by a validated access token.
type Claims struct {
	UserID    uuid.UUID
	Roles     []string
	ExpiresAt time.Time
}

// TokenService validates access tokens issued by the auth provider.
type TokenService interface {
	// ValidateToken checks the signature and expiry of tokenString.
	ValidateToken(tokenString string) (*Claims, error)

	// IssueToken signs a token for userID. Used by tooling and tests.
	IssueToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error)
}
