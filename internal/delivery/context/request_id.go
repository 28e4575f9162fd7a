// Package context carries request-scoped values from the HTTP edge into the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey string

const (
	keyRequestID  scopeKey = "request_id"
	keyLogger     scopeKey = "logger"
	keyCustomerID scopeKey = "customer_id"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request ID on the echo context for response-side middleware.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestID returns the ID set by the request ID middleware, or "-" when it did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return "-"
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestIDFromContext returns "" outside of a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request-scoped logger so use case logs carry the request and customer IDs.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithCustomer records the authenticated customer and extends the request logger with it.
func WithCustomer(ctx context.Context, customerID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, keyCustomerID, customerID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("customer_id", customerID.String())))
	}

	return ctx
}

// CustomerFromContext reports the authenticated customer, if any.
func CustomerFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyCustomerID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
