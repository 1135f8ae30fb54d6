package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ludo-technologies/csannotate/domain"
	"github.com/ludo-technologies/csannotate/internal/actions"
	"github.com/ludo-technologies/csannotate/internal/constants"
	"github.com/spf13/viper"
)

// DefaultPattern is the report glob used when none is configured
const DefaultPattern = "**/checkstyle-result.xml"

// Sink selection values
const (
	SinkAuto    = "auto"
	SinkGitHub  = "github"
	SinkConsole = "console"
)

// Config represents the main configuration structure
type Config struct {
	// Input controls which reports are read
	Input InputConfig `json:"input" mapstructure:"input" yaml:"input"`

	// Limits holds the annotation caps
	Limits LimitsConfig `json:"limits" mapstructure:"limits" yaml:"limits"`

	// Output holds run report and step output settings
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Logging configures local diagnostics
	Logging LoggingConfig `json:"logging" mapstructure:"logging" yaml:"logging"`

	// Sink selects where annotations go: auto, github, console
	Sink string `json:"sink" mapstructure:"sink" yaml:"sink" validate:"oneof=auto github console"`
}

// InputConfig holds report discovery configuration
type InputConfig struct {
	// Pattern is one or more newline-separated globs; lines starting with ! exclude
	Pattern string `json:"pattern" mapstructure:"pattern" yaml:"pattern"`

	// Exclude lists gitignore-style patterns removed from the matches
	Exclude []string `json:"exclude" mapstructure:"exclude" yaml:"exclude"`
}

// LimitsConfig holds the global and per-severity annotation caps
type LimitsConfig struct {
	Total   int `json:"total" mapstructure:"total" yaml:"total" validate:"min=0"`
	Error   int `json:"error" mapstructure:"error" yaml:"error" validate:"min=0"`
	Warning int `json:"warning" mapstructure:"warning" yaml:"warning" validate:"min=0"`
	Notice  int `json:"notice" mapstructure:"notice" yaml:"notice" validate:"min=0"`
}

// OutputConfig holds configuration for run outputs
type OutputConfig struct {
	// Report is a path for the machine-readable run report (empty = none)
	Report string `json:"report" mapstructure:"report" yaml:"report"`

	// Format of the run report: json, yaml, text
	Format string `json:"format" mapstructure:"format" yaml:"format" validate:"oneof=json yaml text"`

	// StepOutputs publishes counters as step outputs when $GITHUB_OUTPUT is set
	StepOutputs bool `json:"step_outputs" mapstructure:"step_outputs" yaml:"step_outputs"`

	// Progress shows a progress bar on interactive terminals
	Progress bool `json:"progress" mapstructure:"progress" yaml:"progress"`
}

// LoggingConfig configures the console sink
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	limits := domain.DefaultLimits()
	return &Config{
		Input: InputConfig{
			Pattern: DefaultPattern,
			Exclude: []string{},
		},
		Limits: LimitsConfig{
			Total:   limits.Total,
			Error:   limits.Error,
			Warning: limits.Warning,
			Notice:  limits.Notice,
		},
		Output: OutputConfig{
			Report:      "",
			Format:      "json",
			StepOutputs: true,
			Progress:    true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Sink: SinkAuto,
	}
}

// DomainLimits converts the configured caps
func (l LimitsConfig) DomainLimits() domain.Limits {
	return domain.Limits{Total: l.Total, Error: l.Error, Warning: l.Warning, Notice: l.Notice}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration, discovering a config file upward
// from targetPath when configPath is empty
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads a configuration file (optional) and applies
// environment overrides on top of the defaults. The checkstyle_files action
// input wins over everything else for the pattern.
func loadConfigFromFile(configPath string) (*Config, error) {
	// Create a new viper instance to avoid race conditions
	v := viper.New()
	config := DefaultConfig()
	setDefaults(v, config)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if input := actions.GetInput(constants.ActionInputName); input != "" {
		config.Input.Pattern = input
	}
	config.Input.Pattern = strings.TrimSpace(config.Input.Pattern)
	if config.Input.Pattern == "" {
		config.Input.Pattern = DefaultPattern
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("input.pattern", c.Input.Pattern)
	v.SetDefault("input.exclude", c.Input.Exclude)
	v.SetDefault("limits.total", c.Limits.Total)
	v.SetDefault("limits.error", c.Limits.Error)
	v.SetDefault("limits.warning", c.Limits.Warning)
	v.SetDefault("limits.notice", c.Limits.Notice)
	v.SetDefault("output.report", c.Output.Report)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("output.step_outputs", c.Output.StepOutputs)
	v.SetDefault("output.progress", c.Output.Progress)
	v.SetDefault("logging.level", c.Logging.Level)
	v.SetDefault("logging.format", c.Logging.Format)
	v.SetDefault("sink", c.Sink)
}

// bindEnv wires CSANNOTATE_* overrides, e.g. CSANNOTATE_LIMITS_TOTAL
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(constants.EnvVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for a config file from targetPath (or the working
// directory) up to the filesystem root, then in the XDG config directory
func findDefaultConfig(targetPath string) string {
	candidates := constants.ConfigFileNames

	start := targetPath
	if start == "" {
		start = "."
	}
	if absPath, err := filepath.Abs(start); err == nil {
		if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
			absPath = filepath.Dir(absPath)
		}
		for dir := absPath; ; dir = filepath.Dir(dir) {
			if config := searchConfigInDirectory(dir, candidates); config != "" {
				return config
			}
			if parent := filepath.Dir(dir); parent == dir {
				break
			}
		}
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

var validate = validator.New()

// Validate validates the configuration values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	for _, b := range domain.Buckets {
		if limit := c.Limits.DomainLimits().For(b); limit > c.Limits.Total {
			return fmt.Errorf("limits.%s (%d) must not exceed limits.total (%d)", b, limit, c.Limits.Total)
		}
	}
	return nil
}

func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("invalid %s '%v', must be one of: %s", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Errorf("%s must be >= %s, got %v", field, fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s failed %s validation", field, fe.Tag())
	}
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	// Create a new viper instance to avoid race conditions
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("input", config.Input)
	v.Set("limits", config.Limits)
	v.Set("output", config.Output)
	v.Set("logging", config.Logging)
	v.Set("sink", config.Sink)

	return v.WriteConfig()
}
