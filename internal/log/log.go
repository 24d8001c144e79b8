// Package log provides centralized logging for keybind using charmbracelet/log.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})
}

// SetLevel sets the logging level.
func SetLevel(level log.Level) {
	Logger.SetLevel(level)
}

// SetOutput redirects log output. Tests use it to capture diagnostics.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// ParseLevel parses "debug", "info", "warn" or "error".
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// With returns a sub-logger carrying the given key/value pairs.
func With(keyvals ...interface{}) *log.Logger {
	return Logger.With(keyvals...)
}

// Debug logs a debug message.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// CloseError logs an error from a close operation if the error is not nil.
func CloseError(resource string, err error) {
	if err != nil {
		Logger.Warn("failed to close resource", "resource", resource, "error", err)
	}
}
