package domain

import (
	"strconv"
	"strings"
)

// DefaultMessage is used when a violation carries no message
const DefaultMessage = "No message provided"

// DefaultRawSeverity is assumed when a violation carries no severity
const DefaultRawSeverity = "error"

// Severity is the normalized severity of a violation
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNotice  Severity = "notice"
)

// Bucket is the severity class used for cap accounting.
// It doubles as the workflow command name of an annotation.
type Bucket string

const (
	BucketError   Bucket = "error"
	BucketWarning Bucket = "warning"
	BucketNotice  Bucket = "notice"
)

// Buckets lists all buckets in summary order
var Buckets = []Bucket{BucketError, BucketWarning, BucketNotice}

// RawViolation is one <error> element of a Checkstyle report, attributes as found
type RawViolation struct {
	Line     string `json:"line,omitempty" yaml:"line,omitempty"`
	Column   string `json:"column,omitempty" yaml:"column,omitempty"`
	Severity string `json:"severity,omitempty" yaml:"severity,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Violation is a single normalized rule infraction
type Violation struct {
	File            string   `json:"file" yaml:"file"`
	Line            int      `json:"line" yaml:"line"`
	Column          int      `json:"column" yaml:"column"`
	Severity        Severity `json:"severity" yaml:"severity"`
	RawSeverity     string   `json:"raw_severity" yaml:"raw_severity"`
	Bucket          Bucket   `json:"bucket" yaml:"bucket"`
	Message         string   `json:"message" yaml:"message"`
	Source          string   `json:"source" yaml:"source"`
	RuleShortName   string   `json:"rule_short_name" yaml:"rule_short_name"`
	RuleLastSegment string   `json:"rule_last_segment" yaml:"rule_last_segment"`
}

// NewViolation normalizes a raw record found under the given file name
func NewViolation(file string, raw RawViolation) Violation {
	rawSeverity := raw.Severity
	if rawSeverity == "" {
		rawSeverity = DefaultRawSeverity
	}

	message := raw.Message
	if message == "" {
		message = DefaultMessage
	}

	return Violation{
		File:            file,
		Line:            parsePosition(raw.Line),
		Column:          parsePosition(raw.Column),
		Severity:        NormalizeSeverity(rawSeverity),
		RawSeverity:     rawSeverity,
		Bucket:          ClassifyBucket(rawSeverity),
		Message:         message,
		Source:          raw.Source,
		RuleShortName:   RuleShortName(raw.Source),
		RuleLastSegment: RuleLastSegment(raw.Source),
	}
}

// IsError reports whether the raw severity is literally "error".
// Exotic values such as "ERR" land in the error bucket but do not fail the run.
func (v Violation) IsError() bool {
	return strings.EqualFold(v.RawSeverity, "error")
}

// NormalizeSeverity maps a raw severity string onto error, warning or notice
func NormalizeSeverity(raw string) Severity {
	switch strings.ToLower(raw) {
	case "warning":
		return SeverityWarning
	case "info", "notice":
		return SeverityNotice
	default:
		return SeverityError
	}
}

// ClassifyBucket picks the cap bucket for a raw severity string.
// Only "info" reaches the notice bucket; unknown values count as errors.
func ClassifyBucket(raw string) Bucket {
	switch strings.ToLower(raw) {
	case "warning":
		return BucketWarning
	case "info":
		return BucketNotice
	default:
		return BucketError
	}
}

// RuleShortName derives an annotation title from a Checkstyle source identifier:
// "com.puppycrawl.tools.checkstyle.checks.coding.NestedIfDepthCheck" becomes
// "coding/NestedIfDepth". Sources without a dot are returned unchanged.
func RuleShortName(source string) string {
	if !strings.Contains(source, ".") {
		return source
	}
	parts := strings.Split(source, ".")
	rule := strings.TrimSuffix(parts[len(parts)-1], "Check")
	return parts[len(parts)-2] + "/" + rule
}

// RuleLastSegment returns the last dot-separated segment of a source identifier
func RuleLastSegment(source string) string {
	if i := strings.LastIndex(source, "."); i >= 0 {
		return source[i+1:]
	}
	return source
}

func parsePosition(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
