// Package logging is the structured logger every growlog component receives.
// SlogLogger, backed by log/slog, is the only implementation.
package logging

import "context"

// Logger takes a message plus alternating key/value args:
//
//	log.Warn(ctx, "session restore failed", "error", err)
//
// With derives a logger that prepends its args to every record, which is how
// components tag their output ("component", "session").
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}
