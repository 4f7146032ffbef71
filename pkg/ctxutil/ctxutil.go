package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	adminUserKey ctxKey = "admin_user"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithAdminUser stores the authenticated admin username in the context.
func WithAdminUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminUserKey, username)
}

// AdminUserFromCtx extracts the authenticated admin username.
// Returns "" and false when the request was not authenticated.
func AdminUserFromCtx(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(adminUserKey).(string)
	if !ok || u == "" {
		return "", false
	}
	return u, true
}
