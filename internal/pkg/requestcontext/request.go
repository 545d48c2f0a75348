// Package requestcontext carries request correlation through context so
// log lines from the same request or device connection can be joined.
package requestcontext

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	driverIDKey  contextKey = "driver_id"
)

// WithRequestID stores requestID in ctx, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request ID stored in ctx
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithDriverID stores the driver a request or connection acts for
func WithDriverID(ctx context.Context, driverID string) context.Context {
	return context.WithValue(ctx, driverIDKey, driverID)
}

// DriverID returns the driver stored in ctx
func DriverID(ctx context.Context) string {
	id, _ := ctx.Value(driverIDKey).(string)
	return id
}

// Middleware reuses the caller's X-Request-ID or assigns one, echoes it on
// the response and stores it in the request context
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(echo.HeaderXRequestID)
			ctx := WithRequestID(req.Context(), requestID)
			requestID = RequestID(ctx)

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
