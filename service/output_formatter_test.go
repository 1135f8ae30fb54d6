package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ludo-technologies/csannotate/domain"
	"gopkg.in/yaml.v3"
)

func sampleRunResult() *domain.RunResult {
	c := domain.Counters{Errors: 12, Warnings: 1, Total: 13, Skipped: 2}
	return &domain.RunResult{
		RunID:       "0b7b1c1e-3c55-4a3b-9f5e-0d3c2a1b4c5d",
		Passed:      false,
		ExitCode:    1,
		Pattern:     "**/checkstyle-result.xml",
		Limits:      domain.DefaultLimits(),
		Counters:    c,
		Breakdown:   c.Breakdown(domain.DefaultLimits()),
		FoundErrors: true,
		Files: []domain.FileResult{
			{Path: "target/checkstyle-result.xml", Status: domain.FileStatusOK, Violations: 13},
			{Path: "broken.xml", Status: domain.FileStatusParseError, Error: "XML syntax error on line 1"},
		},
		Violations: []domain.AnnotatedViolation{{
			Violation:    domain.NewViolation("Foo.java", domain.RawViolation{Line: "1", Message: "m"}),
			RelativePath: "Foo.java",
			Decision:     domain.DecisionAdmitted,
		}},
		Version: "dev",
	}
}

func TestOutputFormatter_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputFormatter().Write(sampleRunResult(), domain.OutputFormatJSON, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["passed"] != false || decoded["exit_code"] != float64(1) {
		t.Errorf("Unexpected status fields: %v %v", decoded["passed"], decoded["exit_code"])
	}

	violations := decoded["violations"].([]any)
	first := violations[0].(map[string]any)
	if first["file"] != "Foo.java" || first["decision"] != "admitted" || first["bucket"] != "error" {
		t.Errorf("Embedded violation fields not inlined: %v", first)
	}

	files := decoded["files"].([]any)
	if _, ok := files[0].(map[string]any)["error"]; ok {
		t.Error("Expected error to be omitted for a loaded report")
	}
}

func TestOutputFormatter_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputFormatter().Write(sampleRunResult(), domain.OutputFormatYAML, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var decoded struct {
		Counters   domain.Counters `yaml:"counters"`
		Violations []struct {
			File     string `yaml:"file"`
			Decision string `yaml:"decision"`
		} `yaml:"violations"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if decoded.Counters.Skipped != 2 {
		t.Errorf("Expected skipped 2, got %d", decoded.Counters.Skipped)
	}
	if len(decoded.Violations) != 1 || decoded.Violations[0].File != "Foo.java" || decoded.Violations[0].Decision != "admitted" {
		t.Errorf("Unexpected violations %+v", decoded.Violations)
	}
}

func TestOutputFormatter_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputFormatter().Write(sampleRunResult(), domain.OutputFormatText, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Status:     FAIL",
		"Violations: 13 (11 annotated, 2 omitted)",
		"[parse_error] broken.xml: XML syntax error on line 1",
		"[ok] target/checkstyle-result.xml",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestOutputFormatter_UnsupportedFormat(t *testing.T) {
	err := NewOutputFormatter().Write(sampleRunResult(), "xml", &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}
	var de domain.DomainError
	if !errors.As(err, &de) || de.Code != domain.ErrCodeUnsupportedFormat {
		t.Errorf("Expected unsupported format error, got %v", err)
	}
}
