package actions

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Sink reports to the GitHub Actions runner
type Sink struct {
	out         io.Writer
	summaryPath string
	outputPath  string
	failed      bool
	reason      string
}

// NewSink creates a sink bound to the runner's stdout and command files
func NewSink() *Sink {
	return NewSinkWithOptions(os.Stdout, os.Getenv(EnvStepSummary), os.Getenv(EnvOutput))
}

// NewSinkWithOptions creates a sink with explicit destinations
func NewSinkWithOptions(out io.Writer, summaryPath, outputPath string) *Sink {
	return &Sink{out: out, summaryPath: summaryPath, outputPath: outputPath}
}

// Debug writes a ::debug:: command
func (s *Sink) Debug(message string) {
	Issue(s.out, "debug", nil, message)
}

// Info writes a plain log line
func (s *Sink) Info(message string) {
	fmt.Fprintln(s.out, message)
}

// Warning writes a ::warning:: command
func (s *Sink) Warning(message string) {
	Issue(s.out, "warning", nil, message)
}

// Error writes an ::error:: command
func (s *Sink) Error(message string) {
	Issue(s.out, "error", nil, message)
}

// SetFailed records the failure and writes it as an ::error:: command
func (s *Sink) SetFailed(message string) {
	s.failed = true
	s.reason = message
	s.Error(message)
}

// Failed reports whether SetFailed was called, and the last reason
func (s *Sink) Failed() (bool, string) {
	return s.failed, s.reason
}

// AppendSummary appends markdown to $GITHUB_STEP_SUMMARY
func (s *Sink) AppendSummary(markdown string) error {
	if s.summaryPath == "" {
		return fmt.Errorf("unable to find environment variable for $%s", EnvStepSummary)
	}
	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}
	return AppendFile(s.summaryPath, markdown)
}

// SetOutput appends a step output to $GITHUB_OUTPUT
func (s *Sink) SetOutput(name, value string) error {
	if s.outputPath == "" {
		return fmt.Errorf("unable to find environment variable for $%s", EnvOutput)
	}
	line, err := FormatOutput(name, value)
	if err != nil {
		return err
	}
	return AppendFile(s.outputPath, line)
}
