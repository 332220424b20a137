package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

// Options configures the slog-backed logger.
type Options struct {
	Level  string // debug, info, warn, error; defaults to info
	Format string // "json" or "text"; defaults to text
	Output io.Writer
}

type slogLogger struct {
	logger *slog.Logger
}

// New creates a Logger backed by log/slog and makes it the slog default.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(opts.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return &slogLogger{logger: l}
}

// Discard returns a Logger that drops everything. Used by tests.
func Discard() Logger {
	return &slogLogger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Error logs an error message along with the error value.
func (l *slogLogger) Error(msg string, err error) {
	if err != nil {
		l.log(slog.LevelError, msg, slog.Any("error", err))
		return
	}
	l.log(slog.LevelError, msg)
}

// Warn logs a warning message.
func (l *slogLogger) Warn(msg string) {
	l.log(slog.LevelWarn, msg)
}

// Info logs an informational message.
func (l *slogLogger) Info(msg string) {
	l.log(slog.LevelInfo, msg)
}

// Debug logs a debug message.
func (l *slogLogger) Debug(msg string) {
	l.log(slog.LevelDebug, msg)
}

// log records the caller of the public method as the source, like log.Output(2, ...) did.
func (l *slogLogger) log(level slog.Level, msg string, attrs ...slog.Attr) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip Callers, log, and the public method
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = l.logger.Handler().Handle(ctx, r)
}

// Printf adapts the Logger for libraries that expect a Printf-style logger (gorm).
type Printf struct {
	Log Logger
}

// Printf logs the formatted message at info level.
func (p Printf) Printf(format string, args ...interface{}) {
	p.Log.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
