package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts the transaction started by nrecho
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// WithSegment executes fn inside a named segment of the context's transaction
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment(segmentName).End()
	}
	return fn()
}

// TraceHandler names the transaction and reports handler errors
func TraceHandler(handlerName string, handler echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		txn := FromEchoContext(c)
		if txn != nil {
			txn.SetName(handlerName)
		}

		err := handler(c)
		if err != nil && txn != nil {
			txn.NoticeError(err)
		}
		return err
	}
}
