package utils

import (
	"context"
	"konsulin-admin-console/internal/pkg/constvars"
)

// RequestIDFromContext returns the request id the console middleware stored, or "".
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}
