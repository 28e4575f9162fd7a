package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me/eligibility", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func ok(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockService.MockTokenService)
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("good").
					Return(&service.Claims{UserID: userID, Roles: []string{"customer"}, ExpiresAt: time.Now().Add(time.Hour)}, nil).
					Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			c, rec := newContext(tt.header)
			require.NoError(t, NewAuthMiddleware(tokens).Authenticate(ok)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, userID, c.Get(ContextKeyUserID))
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	c, rec := newContext("")
	c.Set(ContextKeyRoles, []string{"customer"})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(ok)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newContext("")
	c.Set(ContextKeyRoles, []string{"customer", "admin"})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(ok)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:       "application error",
			err:        errors.Wrap(domainerrors.ErrOutsideDeliveryArea, "checkout"),
			wantStatus: domainerrors.ErrOutsideDeliveryArea.HTTPCode(),
			wantCode:   domainerrors.ErrOutsideDeliveryArea.ErrorCode(),
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error hides details",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")
			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body domainerrors.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}
