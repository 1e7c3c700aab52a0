package http

import (
	"context"
	"log/slog"

	"github.com/example/room-booking/internal/logging"
)

type contextKey string

const customerNameContextKey contextKey = "customer_name"

// ContextWithCustomerName injects the customer name resolved from the request path.
func ContextWithCustomerName(ctx context.Context, customerName string) context.Context {
	return context.WithValue(ctx, customerNameContextKey, customerName)
}

// CustomerNameFromContext extracts a customer name previously associated with the context.
func CustomerNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(customerNameContextKey).(string)
	return name, ok
}

// ContextWithLogger returns a derived context carrying the request logger.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.ContextWithLogger(ctx, logger)
}

// LoggerFromContext extracts the request logger from the context if present.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}
