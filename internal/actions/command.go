// Package actions speaks the GitHub Actions runner protocol: workflow
// commands on stdout, the step summary file and the step output file.
package actions

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Environment variables set by the runner
const (
	EnvActions     = "GITHUB_ACTIONS"
	EnvStepSummary = "GITHUB_STEP_SUMMARY"
	EnvOutput      = "GITHUB_OUTPUT"
)

// IsActions reports whether the process runs inside a GitHub Actions job
func IsActions() bool {
	return os.Getenv(EnvActions) == "true"
}

// Command formats a workflow command line, escaping data and property
// values the same way the official toolkit does.
func Command(name string, props map[string]string, message string) string {
	var sb strings.Builder
	sb.WriteString("::")
	sb.WriteString(name)

	if len(props) > 0 {
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(" ")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(k)
			sb.WriteString("=")
			sb.WriteString(EscapeProperty(props[k]))
		}
	}

	sb.WriteString("::")
	sb.WriteString(EscapeData(message))
	return sb.String()
}

// EscapeData escapes a command message
func EscapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

// EscapeProperty escapes a command property value
func EscapeProperty(s string) string {
	s = EscapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	return strings.ReplaceAll(s, ",", "%2C")
}

// Issue writes a workflow command line to w
func Issue(w io.Writer, name string, props map[string]string, message string) {
	fmt.Fprintln(w, Command(name, props, message))
}

// GetInput reads an action input from INPUT_<NAME>, trimmed.
// Spaces in the name become underscores, as the runner does.
func GetInput(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return strings.TrimSpace(os.Getenv(key))
}
