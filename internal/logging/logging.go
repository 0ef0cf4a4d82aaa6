package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the structured logger shared by the client packages.
type Logger = log.Logger

// Open returns a logfmt logger appending to path. The TUI owns the
// terminal, so logs never go to stdout; an empty path discards everything.
// The returned close func is always safe to call.
func Open(path string) (*Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f), f.Close, nil
}

// New returns a debug-level logfmt logger writing to w.
func New(w io.Writer) *Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		Prefix:          "codevoice",
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
