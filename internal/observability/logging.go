// Package observability provides structured logging for the application.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// RepoLogger provides structured logging for repository operations.
type RepoLogger struct {
	aggregate string
	logger    *Logger
}

// NewRepoLogger creates a new RepoLogger for the given aggregate.
func NewRepoLogger(aggregate string) *RepoLogger {
	return &RepoLogger{
		aggregate: aggregate,
		logger:    GlobalLogger,
	}
}

// LogMutation logs a repository write operation.
func (l *RepoLogger) LogMutation(ctx context.Context, operation string, fields map[string]interface{}) {
	attrs := []any{
		slog.String("aggregate", l.aggregate),
		slog.String("operation", operation),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "repository mutation", attrs...)
}

// LogError logs a repository error.
func (l *RepoLogger) LogError(ctx context.Context, err error, operation string) {
	l.logger.ErrorContext(ctx, "repository error",
		slog.String("aggregate", l.aggregate),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}
