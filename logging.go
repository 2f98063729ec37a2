package fluentkit

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"go.uber.org/zap"
)

// Logger is a minimal printf-style logging interface.
// It's compatible with the standard library *log.Logger.
type Logger interface {
	// Printf logs a formatted message.
	Printf(format string, v ...any)
}

// StructuredLogger provides leveled, key-value logging for the demo runner.
// It is satisfied by SlogAdapter, ZapAdapter, NopLogger and any printf-style
// logger wrapped with WrapPrintfLogger.
//
//	runner := demo.NewRunner(demo.WithLogger(fluentkit.NewSlogAdapter(slog.Default())))
type StructuredLogger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}

// printfLoggerWrapper wraps a printf-style logger to implement StructuredLogger.
type printfLoggerWrapper struct {
	logger Logger
}

// WrapPrintfLogger wraps a printf-style Logger to implement StructuredLogger.
// Each line is prefixed with its level and followed by the key-value pairs.
func WrapPrintfLogger(l Logger) StructuredLogger {
	return &printfLoggerWrapper{logger: l}
}

// WrapStdLogger wraps a standard library *log.Logger.
// It is equivalent to WrapPrintfLogger(l).
func WrapStdLogger(l *log.Logger) StructuredLogger {
	return &printfLoggerWrapper{logger: l}
}

func (w *printfLoggerWrapper) Debug(msg string, args ...any) {
	w.logger.Printf("%s", "[DEBUG] "+msg+formatArgs(args))
}

func (w *printfLoggerWrapper) Info(msg string, args ...any) {
	w.logger.Printf("%s", "[INFO] "+msg+formatArgs(args))
}

func (w *printfLoggerWrapper) Warn(msg string, args ...any) {
	w.logger.Printf("%s", "[WARN] "+msg+formatArgs(args))
}

func (w *printfLoggerWrapper) Error(msg string, args ...any) {
	w.logger.Printf("%s", "[ERROR] "+msg+formatArgs(args))
}

var _ StructuredLogger = (*printfLoggerWrapper)(nil)

// formatArgs renders key-value pairs as " | k=v k2=v2".
// A trailing key without a value is rendered as k=<missing>.
func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(" |")
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
		} else {
			fmt.Fprintf(&sb, " %v=<missing>", args[i])
		}
	}
	return sb.String()
}

// NopLogger discards all log messages.
type NopLogger struct{}

// Printf implements Logger.Printf.
func (NopLogger) Printf(format string, v ...any) {}

// Debug implements StructuredLogger.Debug.
func (NopLogger) Debug(msg string, args ...any) {}

// Info implements StructuredLogger.Info.
func (NopLogger) Info(msg string, args ...any) {}

// Warn implements StructuredLogger.Warn.
func (NopLogger) Warn(msg string, args ...any) {}

// Error implements StructuredLogger.Error.
func (NopLogger) Error(msg string, args ...any) {}

var (
	_ Logger           = NopLogger{}
	_ StructuredLogger = NopLogger{}
)

// ============================================================================
// Slog Adapter
// ============================================================================

// SlogAdapter adapts a slog.Logger to the StructuredLogger interface.
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	runner := demo.NewRunner(demo.WithLogger(fluentkit.NewSlogAdapter(logger)))
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter wrapping the given slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements StructuredLogger.Debug.
func (a *SlogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }

// Info implements StructuredLogger.Info.
func (a *SlogAdapter) Info(msg string, args ...any) { a.logger.Info(msg, args...) }

// Warn implements StructuredLogger.Warn.
func (a *SlogAdapter) Warn(msg string, args ...any) { a.logger.Warn(msg, args...) }

// Error implements StructuredLogger.Error.
func (a *SlogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }

// WithGroup returns a new SlogAdapter with a log group prefix.
func (a *SlogAdapter) WithGroup(name string) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.WithGroup(name)}
}

// With returns a new SlogAdapter with the given attributes added.
func (a *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.With(args...)}
}

var _ StructuredLogger = (*SlogAdapter)(nil)

// ============================================================================
// Zap Adapter
// ============================================================================

// ZapAdapter adapts a zap.Logger to the StructuredLogger interface.
// Key-value pairs are passed to the sugared logger's *w methods.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter creates a new ZapAdapter. A nil logger discards everything.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAdapter{logger: logger.Sugar()}
}

// Debug implements StructuredLogger.Debug.
func (a *ZapAdapter) Debug(msg string, args ...any) { a.logger.Debugw(msg, args...) }

// Info implements StructuredLogger.Info.
func (a *ZapAdapter) Info(msg string, args ...any) { a.logger.Infow(msg, args...) }

// Warn implements StructuredLogger.Warn.
func (a *ZapAdapter) Warn(msg string, args ...any) { a.logger.Warnw(msg, args...) }

// Error implements StructuredLogger.Error.
func (a *ZapAdapter) Error(msg string, args ...any) { a.logger.Errorw(msg, args...) }

// With returns a new ZapAdapter with the given key-value pairs attached.
func (a *ZapAdapter) With(args ...any) *ZapAdapter {
	return &ZapAdapter{logger: a.logger.With(args...)}
}

// Sync flushes any buffered log entries.
func (a *ZapAdapter) Sync() error {
	return a.logger.Sync()
}

var _ StructuredLogger = (*ZapAdapter)(nil)
