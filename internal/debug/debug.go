package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLOWBOARD_DEBUG"

const prefix = "flowboard"

// New returns a logger writing to w. Verbose enables debug messages.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OpenFile returns a debug-level logger appending to the file at path.
// If path is empty, uses "debug.log" in the current directory.
// The returned close function closes the file.
func OpenFile(path string) (*log.Logger, func() error, error) {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Prefix:          prefix,
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})
	return logger, f.Close, nil
}

// FromEnv returns the file logger named by FLOWBOARD_DEBUG when it is set,
// and New(fallback, verbose) otherwise.
func FromEnv(fallback io.Writer, verbose bool) (*log.Logger, func() error, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return OpenFile(path)
	}
	return New(fallback, verbose), func() error { return nil }, nil
}
