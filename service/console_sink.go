package service

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ConsoleSink reports to a local terminal. Plain lines and annotation
// directives go to out, diagnostics are logged through slog on errOut.
type ConsoleSink struct {
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
	failed bool
	reason string
}

// NewConsoleSink creates a console sink on stdout/stderr
func NewConsoleSink(level, format string) *ConsoleSink {
	return NewConsoleSinkWithWriters(os.Stdout, os.Stderr, level, format)
}

// NewConsoleSinkWithWriters creates a console sink on the given writers
func NewConsoleSinkWithWriters(out, errOut io.Writer, level, format string) *ConsoleSink {
	return &ConsoleSink{
		out:    out,
		errOut: errOut,
		logger: NewLogger(errOut, level, format),
	}
}

// NewLogger builds a slog logger; format is "text" or "json"
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Debug logs at debug level
func (s *ConsoleSink) Debug(message string) {
	s.logger.Debug(message)
}

// Info writes a plain line to out
func (s *ConsoleSink) Info(message string) {
	fmt.Fprintln(s.out, message)
}

// Warning logs at warn level
func (s *ConsoleSink) Warning(message string) {
	s.logger.Warn(message)
}

// Error logs at error level
func (s *ConsoleSink) Error(message string) {
	s.logger.Error(message)
}

// SetFailed records the failure and prints a FAIL line
func (s *ConsoleSink) SetFailed(message string) {
	s.failed = true
	s.reason = message
	fmt.Fprintf(s.errOut, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("FAIL:"), message)
}

// Failed reports whether SetFailed was called, and the last reason
func (s *ConsoleSink) Failed() (bool, string) {
	return s.failed, s.reason
}

// PrintPass prints the closing PASS line
func (s *ConsoleSink) PrintPass(message string) {
	fmt.Fprintf(s.errOut, "%s %s\n", color.New(color.FgGreen, color.Bold).Sprint("PASS:"), message)
}

// AppendSummary prints the summary to out; there is no step summary locally
func (s *ConsoleSink) AppendSummary(markdown string) error {
	fmt.Fprintln(s.out, markdown)
	return nil
}

// SetOutput logs step outputs at debug level
func (s *ConsoleSink) SetOutput(name, value string) error {
	s.logger.Debug("step output", "name", name, "value", value)
	return nil
}
