// Package logger is the process-wide diagnostic log for zuc.
// Collaborator failures that are swallowed by the pipeline and shell
// end up here. By default only warnings and errors are written; the
// --verbose flag enables debug output.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	level   = log.WarnLevel
	base    = newLogger(os.Stderr, log.WarnLevel)
)

func newLogger(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "zuc",
	})
}

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		base.SetLevel(log.DebugLevel)
	} else {
		base.SetLevel(level)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetLevel sets the minimum level written when not verbose
// ("debug", "info", "warn", "error").
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	if !verbose {
		base.SetLevel(lvl)
	}
	return nil
}

// SetOutput sets the destination writer. Defaults to os.Stderr.
// The TUI points this at a file so log lines do not corrupt the screen.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	lvl := level
	if verbose {
		lvl = log.DebugLevel
	}
	base = newLogger(w, lvl)
}

// OpenFile redirects output to path, creating it if needed.
// The returned function closes the file and restores stderr.
func OpenFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	SetOutput(f)
	mu.Lock()
	base.SetReportTimestamp(true)
	mu.Unlock()
	return func() {
		SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func current() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Debug logs a formatted debug message.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

// Section logs a section header at debug level.
func Section(name string) {
	current().Debugf("=== %s ===", name)
}

// Info logs a formatted informational message.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Warn logs a formatted warning.
func Warn(format string, args ...any) {
	current().Warnf(format, args...)
}

// Error logs a formatted error.
func Error(format string, args ...any) {
	current().Errorf(format, args...)
}
