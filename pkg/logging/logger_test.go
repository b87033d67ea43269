package logging

import (
	"context"
	"testing"
)

func TestWithSessionID_RoundTrip(t *testing.T) {
	ctx := WithSessionID(context.Background(), "abc123")
	if got := GetSessionID(ctx); got != "abc123" {
		t.Errorf("GetSessionID() = %q, want %q", got, "abc123")
	}
}

func TestWithSessionID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithSessionID(context.Background(), "")
	if got := GetSessionID(ctx); got == "" {
		t.Error("expected a generated session ID, got empty string")
	}
}

func TestGetSessionID_MissingReturnsEmpty(t *testing.T) {
	if got := GetSessionID(context.Background()); got != "" {
		t.Errorf("GetSessionID() = %q, want empty", got)
	}
}

func TestGenerateSessionID_UniqueAndWellFormed(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()
	if len(a) != 16 {
		t.Errorf("session ID length = %d, want 16", len(a))
	}
	if a == b {
		t.Error("two generated session IDs collided")
	}
}

func TestNewLogger_NotNil(t *testing.T) {
	logger := NewLogger()
	if logger == nil || logger.Logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	// Smoke: must not panic with context helpers.
	logger.Info(WithSessionID(context.Background(), ""), "test message", "key", "value")
}
