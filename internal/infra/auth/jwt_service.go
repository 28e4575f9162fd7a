// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails parsing, signature or claim checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// jwtService validates HS256 access tokens issued by the auth provider.
// The subject claim carries the user UUID and "role" or "roles" carry the roles.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}, nil
}

// ValidateToken checks the signature and expiry of tokenString and extracts the caller identity.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, errorMessage(err))
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.Wrap(ErrInvalidToken, "subject missing")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a user id")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.Wrap(ErrInvalidToken, "expiry missing")
	}

	return &service.Claims{
		UserID:    userID,
		Roles:     rolesFromClaims(claims),
		ExpiresAt: exp.Time,
	}, nil
}

// IssueToken signs an access token for userID.
func (s *jwtService) IssueToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if roles != nil {
		claims["roles"] = roles
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func rolesFromClaims(claims jwt.MapClaims) []string {
	var roles []string
	if list, ok := claims["roles"].([]any); ok {
		for _, r := range list {
			if role, ok := r.(string); ok {
				roles = append(roles, role)
			}
		}
	}
	// Single "role" claim as issued by hosted auth providers.
	if role, ok := claims["role"].(string); ok && role != "" {
		roles = append(roles, role)
	}

	return roles
}

func errorMessage(err error) string {
	if err == nil {
		return "token not valid"
	}

	return err.Error()
}
