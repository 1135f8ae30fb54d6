package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "csannotate"

	// ConfigFileName is the default config file name
	ConfigFileName = ".csannotate.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "CSANNOTATE"

	// ActionInputName is the action input holding the report pattern
	ActionInputName = "checkstyle_files"
)

// ConfigFileNames lists config file candidates in order of preference
var ConfigFileNames = []string{
	"csannotate.yaml",
	"csannotate.yml",
	".csannotate.yaml",
	".csannotate.yml",
	".csannotate.toml",
	".csannotate.json",
}

// Fixed report texts
const (
	FailureMessage     = "Checkstyle reported errors"
	ConsolidatedHeader = "\n=== CheckStyle Violations ==="
	ConsolidatedFooter = "===========================\n"
)
