package logging

import (
	"context"
	"log/slog"
)

// Logger receives the engine's debug records. Curves bind it once with the
// curve name and log through Debug on slow paths only.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New binds a Logger to l, or to slog.Default() when l is nil.
func New(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{l}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return slogLogger{slog.New(slog.DiscardHandler)}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s slogLogger) With(args ...any) Logger {
	return slogLogger{s.l.With(args...)}
}

// Redacted marks key as present without its value. Use it for nonces,
// private keys, chain codes and shared secrets.
func Redacted(key string) slog.Attr {
	return slog.String(key, "[redacted]")
}
