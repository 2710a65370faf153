// Package logging builds the catalog's slog logger and carries it through
// request contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
//	    slog.String("service", cfg.Telemetry.ServiceName),
//	    slog.String("storage", cfg.Storage.Driver),
//	)
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Application services log failures with the operation name, the entity
// identifiers involved and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to change program faculty",
//	    slog.String("operation", "ChangeFaculty"),
//	    slog.Int64("program_id", id),
//	    slog.Int64("faculty_id", facultyID),
//	    slog.Any("error", err),
//	)
//
// Behind the HTTP logging middleware the context logger already carries
// request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a logger writing to w. level is one of debug, info, warn or
// error and defaults to info; debug also records the source location.
// format "text" selects slog.TextHandler and anything else JSON. attrs are
// attached to every record. Credentials are masked by the masq ReplaceAttr
// hook before any handler sees them.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
