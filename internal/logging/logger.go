// Package logging provides structured logging for the harness CLIs with
// consistent formatting and key-value context. The test harness itself
// reports only through the test framework; this logger serves the command
// binaries.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// defaultLogger is the package-level logger. CLI output stays on stdout;
// diagnostics go to stderr.
var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "sdkharness",
	Level:  log.InfoLevel,
})

// Default returns the package-level logger.
func Default() *log.Logger {
	return defaultLogger
}

// SetVerbose lowers the level to debug.
func SetVerbose(verbose bool) {
	if verbose {
		defaultLogger.SetLevel(log.DebugLevel)
	} else {
		defaultLogger.SetLevel(log.InfoLevel)
	}
}

// With returns a logger carrying additional context key-value pairs.
func With(keyvals ...interface{}) *log.Logger {
	return defaultLogger.With(keyvals...)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	defaultLogger.Debug(msg, keyvals...)
}

// Info logs an informational message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	defaultLogger.Info(msg, keyvals...)
}

// Warn logs a warning with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	defaultLogger.Warn(msg, keyvals...)
}

// Error logs an error with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	defaultLogger.Error(msg, keyvals...)
}
