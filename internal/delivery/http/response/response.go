package response

import (
	"errors"
	"fmt"
	"net/http"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success wraps data in the standard envelope; message defaults to "Success".
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// AppError renders an application error. Details of 5xx errors stay in the logs.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	details := appErr.Details()
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		details = ""
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// BindingError reports a body that could not be decoded into the request for subject.
func BindingError(c echo.Context, subject string, err error) error {
	details := ""
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		details = fmt.Sprint(httpErr.Message)
	}

	return Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid "+subject, details)
}

// ValidationError reports field rule failures; the validator message names every failing field.
func ValidationError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), "")
}

// InvalidID reports a path ID that is not a UUID.
func InvalidID(c echo.Context, resource string) error {
	return Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+resource+" ID", "")
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
