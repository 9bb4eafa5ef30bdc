// Package logging provides a structured logging wrapper around Go's log/slog
// with optional rotated file output and timing helpers.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables consulted by ConfigFromEnv
const (
	EnvFile   = "KCTX_LOG_FILE"
	EnvLevel  = "KCTX_LOG_LEVEL"
	EnvFormat = "KCTX_LOG_FORMAT"
)

// Logger wraps slog.Logger with convenience methods for kctx
type Logger struct {
	logger *slog.Logger
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable text logs
	FormatText LogFormat = "text"
	// FormatJSON outputs structured JSON logs
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the path to the log file (empty = no logging)
	FilePath string
	// Level is the minimum log level (debug, info, warn, error)
	Level slog.Level
	// Format is the output format (text or json)
	Format LogFormat
	// MaxSizeMB is the maximum size in MB before rotation
	MaxSizeMB int
	// MaxBackups is the maximum number of old log files to keep
	MaxBackups int
}

var (
	globalLogger *Logger
	logWriter    io.Closer
	noopLogger   = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// ConfigFromEnv builds a Config from the KCTX_LOG_* variables.
// Logging stays disabled unless KCTX_LOG_FILE is set.
func ConfigFromEnv() Config {
	return Config{
		FilePath:   os.Getenv(EnvFile),
		Level:      ParseLevel(os.Getenv(EnvLevel)),
		Format:     ParseFormat(os.Getenv(EnvFormat)),
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// Init initializes the global logger with the given configuration.
// If config.FilePath is empty, logging is disabled (noop logger).
func Init(config Config) error {
	Shutdown()
	if config.FilePath == "" {
		globalLogger = noopLogger
		return nil
	}

	writer := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	globalLogger = &Logger{logger: slog.New(handler)}
	logWriter = writer
	return nil
}

// Shutdown closes the log file and falls back to the noop logger
func Shutdown() {
	if logWriter != nil {
		_ = logWriter.Close()
		logWriter = nil
	}
	globalLogger = noopLogger
}

// Get returns the global logger instance.
// Returns a noop logger if Init was not called or logging is disabled.
func Get() *Logger {
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a new Logger with the given key-value pairs added as context
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}

// IsEnabled returns true if logging is enabled (not noop)
func (l *Logger) IsEnabled() bool {
	return l != noopLogger
}

// Package-level convenience functions

// Debug logs a debug message using the global logger
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs an info message using the global logger
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error message using the global logger
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// IsEnabled returns true if logging is enabled globally
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a string to slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
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

// ParseFormat converts a string to LogFormat, defaulting to text
func ParseFormat(format string) LogFormat {
	if format == "json" {
		return FormatJSON
	}
	return FormatText
}
