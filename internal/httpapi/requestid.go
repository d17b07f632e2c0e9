package httpapi

import "context"

// requestIDKey is the context key a request's ID is stored under.
type requestIDKey struct{}

func setRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, reqID)
}

// GetRequestID extracts the request ID previously stored by RequestIDMiddleware.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	reqID, _ := ctx.Value(requestIDKey{}).(string)
	return reqID
}
