package services_test

import (
	"context"
	"testing"

	"ffslot/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRequestID(ctx, "req-123")
	ctx = services.WithTool(ctx, "ffmpeg")

	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
	if tool, ok := services.ToolFromContext(ctx); !ok || tool != "ffmpeg" {
		t.Fatalf("unexpected tool: %v %v", tool, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRequestID(ctx, "")
	ctx = services.WithTool(ctx, "")
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id value")
	}
	if _, ok := services.ToolFromContext(ctx); ok {
		t.Fatal("expected no tool value")
	}
}
