// Package handler holds the echo handlers of the storefront API.
package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// getUserID extracts the user ID set by the auth middleware. The returned
// error is rendered as 401 by the HTTP error handler.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthorized, "no customer on request")
	}

	return userID, nil
}

// outsideNotice describes an ineligible evaluation for response messages.
func outsideNotice(eval entity.Evaluation) string {
	if eval.DistanceKm == nil {
		return "it is outside the delivery area"
	}

	return "it is " + util.FormatDistanceKm(*eval.DistanceKm) + " away, outside the delivery area"
}

// handleAppError renders application errors and hands anything else to the echo error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.AppError(c, appErr)
	}

	return errors.WithStack(err)
}
