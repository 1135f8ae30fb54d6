package service

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ludo-technologies/csannotate/domain"
	"gopkg.in/yaml.v3"
)

// OutputFormatterImpl writes run reports
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteJSON writes data as JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteYAML writes data as YAML to the writer
func WriteYAML(writer io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Write writes the run result in the specified format
func (f *OutputFormatterImpl) Write(result *domain.RunResult, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, result)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, result)
	case domain.OutputFormatText:
		return f.writeText(result, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *OutputFormatterImpl) writeText(result *domain.RunResult, w io.Writer) error {
	status := "PASS"
	if !result.Passed {
		status = "FAIL"
	}

	lines := []string{
		fmt.Sprintf("Status:     %s", status),
		fmt.Sprintf("Pattern:    %s", result.Pattern),
		fmt.Sprintf("Reports:    %d", len(result.Files)),
		fmt.Sprintf("Violations: %d (%d annotated, %d omitted)",
			result.Counters.Total, result.Counters.Admitted(), result.Counters.Skipped),
	}
	for _, bd := range result.Breakdown {
		lines = append(lines, fmt.Sprintf("  %-8s %d/%d reported, %d omitted", bd.Bucket, bd.Reported, bd.Limit, bd.Omitted))
	}
	for _, fr := range result.Files {
		line := fmt.Sprintf("  [%s] %s", fr.Status, fr.Path)
		if fr.Error != "" {
			line += ": " + fr.Error
		}
		lines = append(lines, line)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
