// Package logger builds the process-wide slog logger shared by the
// contact service and the gateway.
package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger tagged with the service name. The
// development environment lowers the level to debug; everything else
// logs at info.
func New(service, environment string) *slog.Logger {
	level := slog.LevelInfo
	if environment == "development" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With("service", service)
}
