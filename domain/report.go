package domain

// ReportDocument is a decoded Checkstyle report
type ReportDocument struct {
	Files []ReportFile `json:"files" yaml:"files"`
}

// ReportFile is one <file> element and its violations in document order
type ReportFile struct {
	Name       string         `json:"name" yaml:"name"`
	Violations []RawViolation `json:"violations" yaml:"violations"`
}

// FileStatus tags the outcome of loading one discovered report
type FileStatus string

const (
	FileStatusOK         FileStatus = "ok"
	FileStatusMissing    FileStatus = "missing"
	FileStatusUnreadable FileStatus = "unreadable"
	FileStatusParseError FileStatus = "parse_error"
)

// FileResult is the tagged result of loading one report.
// Document is nil unless Status is FileStatusOK.
type FileResult struct {
	Path       string          `json:"path" yaml:"path"`
	Status     FileStatus      `json:"status" yaml:"status"`
	Error      string          `json:"error,omitempty" yaml:"error,omitempty"`
	Violations int             `json:"violations" yaml:"violations"`
	Document   *ReportDocument `json:"-" yaml:"-"`
}

// OK reports whether the report loaded successfully
func (r FileResult) OK() bool {
	return r.Status == FileStatusOK
}

// AnnotatedViolation pairs a violation with the allocator decision
type AnnotatedViolation struct {
	Violation    `yaml:",inline"`
	RelativePath string   `json:"relative_path" yaml:"relative_path"`
	Decision     Decision `json:"decision" yaml:"decision"`
}

// RunResult is the machine-readable outcome of one run
type RunResult struct {
	RunID       string               `json:"run_id" yaml:"run_id"`
	Passed      bool                 `json:"passed" yaml:"passed"`
	ExitCode    int                  `json:"exit_code" yaml:"exit_code"`
	Pattern     string               `json:"pattern" yaml:"pattern"`
	Limits      Limits               `json:"limits" yaml:"limits"`
	Counters    Counters             `json:"counters" yaml:"counters"`
	Breakdown   []BucketBreakdown    `json:"breakdown" yaml:"breakdown"`
	FoundErrors bool                 `json:"found_errors" yaml:"found_errors"`
	Files       []FileResult         `json:"files" yaml:"files"`
	Violations  []AnnotatedViolation `json:"violations" yaml:"violations"`
	Duration    int64                `json:"duration_ms" yaml:"duration_ms"`
	GeneratedAt string               `json:"generated_at" yaml:"generated_at"`
	Version     string               `json:"version" yaml:"version"`
}

// OutputFormat represents the run report format
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)
