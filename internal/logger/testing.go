// Package logger provides test helpers for structured logging.
package logger

import (
	"log/slog"
	"os"
)

// TestLevelEnvVar selects the level of test loggers, e.g. TEST_LOG_LEVEL=debug.
const TestLevelEnvVar = "TEST_LOG_LEVEL"

// NewTestLogger creates a logger for tests.
// By default, uses WARN level so missing-document warnings stay visible and
// everything else stays quiet. TEST_DEBUG enables debug logging; TEST_LOG_LEVEL
// picks any other level.
func NewTestLogger() *slog.Logger {
	level := slog.LevelWarn

	if parsed, ok := ParseLevel(os.Getenv(TestLevelEnvVar)); ok {
		level = parsed
	}
	if os.Getenv("TEST_DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler.WithAttrs([]slog.Attr{slog.String("app", "aboutdocs-test")}))
}
