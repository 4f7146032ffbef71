package ctxutil

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("got %q, want %q", got, "req-123")
	}
}

func TestRequestID_Missing(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestAdminUser_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithAdminUser(context.Background(), "admin")
	u, ok := AdminUserFromCtx(ctx)
	if !ok || u != "admin" {
		t.Errorf("got (%q, %v), want (%q, true)", u, ok, "admin")
	}
}

func TestAdminUser_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := AdminUserFromCtx(context.Background()); ok {
		t.Error("expected ok=false for unauthenticated context")
	}
}
