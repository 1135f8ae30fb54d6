// Package testutil provides helper functions for testing csannotate components
package testutil

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Error is one <error> element of a generated report
type Error struct {
	Line     int
	Column   int
	Severity string
	Message  string
	Source   string
}

// File is one <file> element of a generated report
type File struct {
	Name   string
	Errors []Error
}

// ReportXML renders a Checkstyle report. Zero line/column and empty strings
// leave the attribute out.
func ReportXML(files ...File) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<checkstyle version="10.12.0">` + "\n")
	for _, f := range files {
		fmt.Fprintf(&sb, "  <file name=\"%s\">\n", html.EscapeString(f.Name))
		for _, e := range f.Errors {
			sb.WriteString("    <error")
			if e.Line != 0 {
				fmt.Fprintf(&sb, ` line="%d"`, e.Line)
			}
			if e.Column != 0 {
				fmt.Fprintf(&sb, ` column="%d"`, e.Column)
			}
			writeAttr(&sb, "severity", e.Severity)
			writeAttr(&sb, "message", e.Message)
			writeAttr(&sb, "source", e.Source)
			sb.WriteString("/>\n")
		}
		sb.WriteString("  </file>\n")
	}
	sb.WriteString("</checkstyle>\n")
	return sb.String()
}

func writeAttr(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, ` %s="%s"`, name, html.EscapeString(value))
}

// Repeat generates n errors of one severity, numbered from 1
func Repeat(n int, severity, prefix string) []Error {
	errs := make([]Error, 0, n)
	for i := 1; i <= n; i++ {
		errs = append(errs, Error{
			Line:     i,
			Column:   1,
			Severity: severity,
			Message:  fmt.Sprintf("%s %d", prefix, i),
			Source:   fmt.Sprintf("com.puppycrawl.tools.checkstyle.checks.%sCheck%d", prefix, i),
		})
	}
	return errs
}

// WriteFile writes content under dir, creating parent directories, and
// returns the full path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// Call is one recorded sink call
type Call struct {
	Kind    string
	Message string
}

// RecordingSink records every call in order
type RecordingSink struct {
	Calls      []Call
	Summaries  []string
	Outputs    map[string]string
	Failures   []string
	SummaryErr error
	OutputErr  error
}

// NewRecordingSink creates an empty recording sink
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{Outputs: make(map[string]string)}
}

func (s *RecordingSink) Debug(message string)   { s.record("debug", message) }
func (s *RecordingSink) Info(message string)    { s.record("info", message) }
func (s *RecordingSink) Warning(message string) { s.record("warning", message) }
func (s *RecordingSink) Error(message string)   { s.record("error", message) }

// SetFailed records a failure
func (s *RecordingSink) SetFailed(message string) {
	s.record("failed", message)
	s.Failures = append(s.Failures, message)
}

// AppendSummary records the summary unless SummaryErr is set
func (s *RecordingSink) AppendSummary(markdown string) error {
	s.record("summary", markdown)
	if s.SummaryErr != nil {
		return s.SummaryErr
	}
	s.Summaries = append(s.Summaries, markdown)
	return nil
}

// SetOutput records a step output unless OutputErr is set
func (s *RecordingSink) SetOutput(name, value string) error {
	if s.OutputErr != nil {
		return s.OutputErr
	}
	s.Outputs[name] = value
	return nil
}

func (s *RecordingSink) record(kind, message string) {
	s.Calls = append(s.Calls, Call{Kind: kind, Message: message})
}

// Messages returns the messages of one kind in order
func (s *RecordingSink) Messages(kind string) []string {
	var out []string
	for _, c := range s.Calls {
		if c.Kind == kind {
			out = append(out, c.Message)
		}
	}
	return out
}

// Directives returns the info lines that are annotation commands
func (s *RecordingSink) Directives() []string {
	var out []string
	for _, m := range s.Messages("info") {
		if strings.HasPrefix(m, "::") {
			out = append(out, m)
		}
	}
	return out
}

// Failed reports whether SetFailed was called
func (s *RecordingSink) Failed() bool {
	return len(s.Failures) > 0
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
