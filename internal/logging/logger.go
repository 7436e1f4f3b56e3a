// Package logging defines the structured logger used across the service.
// Handlers and clients receive the Logger interface so the backing
// implementation (slog today) can be swapped without touching call sites.
package logging

import "context"

// Logger logs structured, context-aware messages. Variadic args are
// alternating key-value pairs, as in:
//
//	log.Info(ctx, "listening", "addr", addr)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs on
	// every record.
	With(args ...any) Logger
}
