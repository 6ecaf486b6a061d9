// Package logger provides diagnostic logging for docsearch.
// Messages are only emitted in development mode, enabled with the --verbose
// flag or env = "development" in the config file. Production runs stay silent.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu          sync.RWMutex
	development bool
	output      io.Writer = os.Stderr
)

// SetDevelopment enables or disables development-mode diagnostics.
func SetDevelopment(v bool) {
	mu.Lock()
	defer mu.Unlock()
	development = v
}

// IsDevelopment returns true if development-mode diagnostics are enabled.
func IsDevelopment() bool {
	mu.RLock()
	defer mu.RUnlock()
	return development
}

// SetOutput sets the output writer for diagnostics.
// Defaults to os.Stderr. The TUI points this at a log file so output
// does not tear the alternate screen.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Output returns the current diagnostics writer.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

func emit(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if development {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message in development mode.
func Debug(format string, args ...any) {
	emit("[DEBUG] ", format, args...)
}

// Section prints a section header in development mode.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if development {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message in development mode.
func Info(format string, args ...any) {
	emit("[INFO] ", format, args...)
}

// Warn prints a warning in development mode.
func Warn(format string, args ...any) {
	emit("[WARN] ", format, args...)
}

// Error prints an error in development mode. Errors that reach this
// function have already been recovered locally.
func Error(format string, args ...any) {
	emit("[ERROR] ", format, args...)
}
