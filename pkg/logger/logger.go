package logger

import (
	"context"
	"log/slog"
	"os"
)

type contextKey struct{}

func Setup(level string, format string) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// WithCheckID tags the context with an identifier for one check run, so
// every diagnostic pass logged during it can be correlated.
func WithCheckID(ctx context.Context, checkID string) context.Context {
	return context.WithValue(ctx, contextKey{}, checkID)
}

func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()
	if checkID, ok := ctx.Value(contextKey{}).(string); ok {
		logger = logger.With("check_id", checkID)
	}
	return logger
}

func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
