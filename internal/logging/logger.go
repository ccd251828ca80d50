// Package logging provides the logging interface used by the sstable
// builder.
//
// Design: a small interface (Error/Warn/Info/Debug) in the style of
// Badger, Pebble and RocksDB loggers, so callers can wrap their own
// structured logger (slog, zap) if they need to.
//
// Log format: YYYY/MM/DD HH:MM:SS LEVEL message
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level represents the logging level.
type Level int

const (
	// LevelError logs only errors.
	LevelError Level = iota
	// LevelWarn logs warnings and errors.
	LevelWarn
	// LevelInfo logs info, warnings, and errors.
	LevelInfo
	// LevelDebug logs everything including debug messages.
	LevelDebug
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the interface used by the builder to report
// non-fatal conditions. Implementations must be safe for concurrent
// use by unrelated builders; a single builder instance is never used
// concurrently (see the package doc on Builder).
type Logger interface {
	// Errorf logs a formatted error message.
	Errorf(format string, args ...any)
	// Warnf logs a formatted warning message.
	Warnf(format string, args ...any)
	// Infof logs a formatted informational message.
	Infof(format string, args ...any)
	// Debugf logs a formatted debug message.
	Debugf(format string, args ...any)
}

// DefaultLogger writes to a configured output using the standard
// library logger. It is stateless beyond its *log.Logger, which is
// already safe for concurrent use.
type DefaultLogger struct {
	logger *log.Logger
	level  Level
}

// NewDefaultLogger creates a logger that writes to stderr.
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewLogger(os.Stderr, level)
}

// NewLogger creates a logger writing to w at the given level.
func NewLogger(w io.Writer, level Level) *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  level,
	}
}

// Errorf implements Logger.
func (l *DefaultLogger) Errorf(format string, args ...any) {
	if l.level >= LevelError {
		_ = l.logger.Output(2, "ERROR "+fmt.Sprintf(format, args...))
	}
}

// Warnf implements Logger.
func (l *DefaultLogger) Warnf(format string, args ...any) {
	if l.level >= LevelWarn {
		_ = l.logger.Output(2, "WARN "+fmt.Sprintf(format, args...))
	}
}

// Infof implements Logger.
func (l *DefaultLogger) Infof(format string, args ...any) {
	if l.level >= LevelInfo {
		_ = l.logger.Output(2, "INFO "+fmt.Sprintf(format, args...))
	}
}

// Debugf implements Logger.
func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.level >= LevelDebug {
		_ = l.logger.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
	}
}

// discardLogger is a no-op logger used as the zero-value default.
type discardLogger struct{}

func (discardLogger) Errorf(format string, args ...any) {}
func (discardLogger) Warnf(format string, args ...any)  {}
func (discardLogger) Infof(format string, args ...any)  {}
func (discardLogger) Debugf(format string, args ...any) {}

// Discard is the singleton no-op logger, used when a builder is
// constructed without an explicit Logger.
var Discard Logger = discardLogger{}
