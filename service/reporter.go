package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/csannotate/domain"
	"github.com/ludo-technologies/csannotate/internal/constants"
)

// AnnotationReporter renders annotation directives, the consolidated
// violation log and the omission summary
type AnnotationReporter struct {
	workDir string
}

// NewAnnotationReporter creates a reporter that makes paths relative to workDir
func NewAnnotationReporter(workDir string) *AnnotationReporter {
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}
	return &AnnotationReporter{workDir: workDir}
}

// RelativePath makes a reported file path relative to the working directory.
// Paths that cannot be made relative are returned unchanged.
func (r *AnnotationReporter) RelativePath(file string) string {
	if file == "" || r.workDir == "" {
		return file
	}
	abs := file
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.workDir, file)
	}
	rel, err := filepath.Rel(r.workDir, abs)
	if err != nil {
		return file
	}
	return rel
}

// FormatDirective renders the workflow command for an admitted violation.
// The title key is always present, even when the rule has no name.
func (r *AnnotationReporter) FormatDirective(v domain.AnnotatedViolation) string {
	return fmt.Sprintf("::%s file=%s,line=%d,col=%d,title=%s::%s",
		v.Bucket, v.RelativePath, v.Line, v.Column, v.RuleShortName, v.Message)
}

// FormatLogLine renders one line of the consolidated violation log
func (r *AnnotationReporter) FormatLogLine(v domain.AnnotatedViolation) string {
	return fmt.Sprintf("%s:[%d,%d] (%s) %s", v.RelativePath, v.Line, v.Column, v.RuleLastSegment, v.Message)
}

// WriteConsolidated lists every violation, admitted or not, between the
// fixed header and footer. Nothing is written when there are none.
func (r *AnnotationReporter) WriteConsolidated(sink domain.Sink, violations []domain.AnnotatedViolation) {
	if len(violations) == 0 {
		return
	}
	sink.Info(constants.ConsolidatedHeader)
	for _, v := range violations {
		sink.Info(r.FormatLogLine(v))
	}
	sink.Info(constants.ConsolidatedFooter)
}

// BuildSummary renders the markdown omission summary
func (r *AnnotationReporter) BuildSummary(c domain.Counters, limits domain.Limits) string {
	lines := []string{
		"## CheckStyle Violations Summary",
		"",
		fmt.Sprintf("**Total violations found:** %d", c.Total),
		fmt.Sprintf("**Violations reported as annotations:** %d", c.Admitted()),
		fmt.Sprintf("**Violations omitted due to GitHub limits:** %d", c.Skipped),
		"",
		"### Breakdown by severity",
	}
	for _, bd := range c.Breakdown(limits) {
		line := fmt.Sprintf("- %s: %d reported", bucketLabel(bd.Bucket), bd.Reported)
		if bd.Omitted > 0 {
			line += fmt.Sprintf(" (%d omitted)", bd.Omitted)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RecapLine is the informational line restating the omission
func (r *AnnotationReporter) RecapLine(c domain.Counters) string {
	return fmt.Sprintf("CheckStyle found %d violations in total, but only %d were reported as annotations due to GitHub limits.",
		c.Total, c.Admitted())
}

// WriteSummary appends the omission summary to the run summary and logs the
// recap. It does nothing when every violation was annotated.
func (r *AnnotationReporter) WriteSummary(sink domain.Sink, c domain.Counters, limits domain.Limits) bool {
	if c.Skipped == 0 {
		return false
	}
	if err := sink.AppendSummary(r.BuildSummary(c, limits)); err != nil {
		sink.Warning(fmt.Sprintf("Failed to write step summary: %v", err))
	}
	sink.Info(r.RecapLine(c))
	return true
}

func bucketLabel(b domain.Bucket) string {
	switch b {
	case domain.BucketWarning:
		return "Warnings"
	case domain.BucketNotice:
		return "Notices"
	default:
		return "Errors"
	}
}
