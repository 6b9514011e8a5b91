package diag

import (
	"context"

	uuid "github.com/satori/go.uuid"
)

type contextKeys string

const requestIDKey contextKeys = "requestID"

// ContextWithRequestID - create context with requestID
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ContextWithNewRequestID - create context with a random requestID
func ContextWithNewRequestID(ctx context.Context) context.Context {
	return ContextWithRequestID(ctx, uuid.NewV4().String())
}

// RequestIDValue - returns requestID value taken from context
func RequestIDValue(ctx context.Context) string {
	val := ctx.Value(requestIDKey)
	if val == nil {
		return ""
	}
	return val.(string)
}
