package config

import (
	"strconv"
	"strings"
)

// BudgetPreset names a set of annotation caps
type BudgetPreset string

const (
	BudgetPresetGitHub     BudgetPreset = "github"
	BudgetPresetQuiet      BudgetPreset = "quiet"
	BudgetPresetErrorsOnly BudgetPreset = "errors-only"
)

// GetBudgetPresets returns the caps of each preset
func GetBudgetPresets() map[BudgetPreset]LimitsConfig {
	return map[BudgetPreset]LimitsConfig{
		// Mirrors the per-step annotation limits of GitHub Actions
		BudgetPresetGitHub: {
			Total:   50,
			Error:   10,
			Warning: 10,
			Notice:  30,
		},
		BudgetPresetQuiet: {
			Total:   20,
			Error:   10,
			Warning: 5,
			Notice:  5,
		},
		BudgetPresetErrorsOnly: {
			Total:   10,
			Error:   10,
			Warning: 0,
			Notice:  0,
		},
	}
}

// GetFullConfigTemplate returns a documented YAML config for the given pattern and preset
func GetFullConfigTemplate(pattern string, preset BudgetPreset) string {
	limits, ok := GetBudgetPresets()[preset]
	if !ok {
		limits = GetBudgetPresets()[BudgetPresetGitHub]
	}
	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultPattern
	}

	return `# csannotate configuration
# Documentation: https://github.com/ludo-technologies/csannotate

# =============================================================================
# INPUT
# =============================================================================
input:
  # Checkstyle reports to read. Several globs may be given on separate lines;
  # lines starting with "!" drop matches. The action input checkstyle_files
  # overrides this value.
  pattern: ` + formatYAMLBlock(pattern) + `

  # Extra exclusions using .gitignore syntax
  exclude: []

# =============================================================================
# ANNOTATION BUDGET
# =============================================================================
# Violations above these caps are still listed in the log and counted in the
# step summary, but are not turned into inline annotations.
limits:
  # Maximum annotations per run
  total: ` + strconv.Itoa(limits.Total) + `
  error: ` + strconv.Itoa(limits.Error) + `
  warning: ` + strconv.Itoa(limits.Warning) + `
  notice: ` + strconv.Itoa(limits.Notice) + `

# =============================================================================
# OUTPUT
# =============================================================================
output:
  # Write a machine-readable run report to this path (empty = disabled)
  report: ""

  # Run report format: json, yaml, text
  format: json

  # Publish total/reported/omitted counts as step outputs
  step_outputs: true

  # Show a progress bar on interactive terminals
  progress: true

# Diagnostics for local runs: level debug|info|warn|error, format text|json
logging:
  level: info
  format: text

# Where annotations go: auto, github, console
sink: auto
`
}

// formatYAMLBlock renders a pattern as a quoted scalar or, when it spans
// several lines, as a literal block
func formatYAMLBlock(s string) string {
	if !strings.Contains(s, "\n") {
		return strconv.Quote(s)
	}
	var sb strings.Builder
	sb.WriteString("|\n")
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		sb.WriteString("    ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
