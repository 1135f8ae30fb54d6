package service

import (
	"strings"

	"github.com/ludo-technologies/csannotate/domain"
	"github.com/ludo-technologies/csannotate/internal/config"
)

// ConfigOverrides carries values given on the command line. Zero values
// leave the loaded configuration untouched.
type ConfigOverrides struct {
	Pattern    string
	Excludes   []string
	Report     *string
	Format     string
	Sink       string
	LogLevel   string
	NoProgress bool
}

// ConfigurationLoaderImpl loads and merges csannotate configuration
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from path, or from the nearest config file
// when path is empty
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfigWithTarget(path, "")
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return cfg, nil
}

// LoadDefaultConfig returns the built-in defaults shipped with the binary
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *config.Config {
	if cfg, err := config.LoadDefaultConfig(); err == nil {
		return cfg
	}
	return config.DefaultConfig()
}

// MergeConfig applies command line overrides on top of base
func (c *ConfigurationLoaderImpl) MergeConfig(base *config.Config, override ConfigOverrides) *config.Config {
	merged := *base
	merged.Input.Exclude = append([]string(nil), base.Input.Exclude...)

	if p := strings.TrimSpace(override.Pattern); p != "" {
		merged.Input.Pattern = p
	}
	merged.Input.Exclude = append(merged.Input.Exclude, override.Excludes...)

	// An explicit empty report path disables a report set in the file
	if override.Report != nil {
		merged.Output.Report = *override.Report
	}
	if override.Format != "" {
		merged.Output.Format = override.Format
	}
	if override.NoProgress {
		merged.Output.Progress = false
	}

	if override.Sink != "" {
		merged.Sink = override.Sink
	}
	if override.LogLevel != "" {
		merged.Logging.Level = override.LogLevel
	}

	return &merged
}

// ValidateConfig validates the merged configuration
func (c *ConfigurationLoaderImpl) ValidateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return domain.NewConfigError("invalid configuration", err)
	}
	return nil
}
