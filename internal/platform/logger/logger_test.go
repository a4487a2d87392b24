package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestLevelPerEnvironment(t *testing.T) {
	ctx := context.Background()

	if !New("contactd", "development").Enabled(ctx, slog.LevelDebug) {
		t.Fatalf("expected debug enabled in development")
	}
	if New("contactd", "production").Enabled(ctx, slog.LevelDebug) {
		t.Fatalf("expected debug disabled outside development")
	}
	if !New("contactd", "production").Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("expected info enabled in production")
	}
}
