package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ludo-technologies/csannotate/app"
	"github.com/ludo-technologies/csannotate/domain"
	"github.com/ludo-technologies/csannotate/internal/actions"
	"github.com/ludo-technologies/csannotate/internal/config"
	"github.com/ludo-technologies/csannotate/internal/version"
	"github.com/ludo-technologies/csannotate/service"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type for exit codes
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

var (
	annotatePattern    string
	annotateExcludes   []string
	annotateConfigPath string
	annotateReportPath string
	annotateFormat     string
	annotateSink       string
	annotateLogLevel   string
	annotateNoProgress bool
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csannotate",
		Short: "csannotate - Checkstyle reports as GitHub annotations",
		Long: `csannotate reads Checkstyle XML reports and turns their violations into
GitHub Actions annotations, staying within the per-step annotation limits.
Violations beyond the limits are listed in the log and counted in the step summary.

Exit codes:
  0 - No error-severity violations
  1 - Checkstyle reported errors, or the run itself failed

Examples:
  # Annotate every checkstyle-result.xml in the workspace
  csannotate

  # Custom pattern, skipping generated sources
  csannotate --pattern "build/reports/checkstyle/*.xml" --exclude "**/generated/**"

  # Write a machine-readable run report
  csannotate --report csannotate.json`,
		Version:       version.GetVersion(),
		RunE:          runAnnotate,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().StringVarP(&annotatePattern, "pattern", "p", "",
		"Checkstyle report glob(s), newline-separated (default \""+config.DefaultPattern+"\")")
	cmd.Flags().StringArrayVarP(&annotateExcludes, "exclude", "e", nil,
		"gitignore-style pattern of reports to skip (repeatable)")
	cmd.Flags().StringVarP(&annotateConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVarP(&annotateReportPath, "report", "o", "",
		"Write a run report to this path")
	cmd.Flags().StringVarP(&annotateFormat, "format", "f", "json",
		"Run report format: json, yaml, text")
	cmd.Flags().StringVar(&annotateSink, "sink", config.SinkAuto,
		"Output sink: auto, github, console")
	cmd.Flags().StringVar(&annotateLogLevel, "log-level", "info",
		"Console log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&annotateNoProgress, "no-progress", false,
		"Disable the progress bar")

	return cmd
}

func runAnnotate(cmd *cobra.Command, _ []string) (err error) {
	loader := service.NewConfigurationLoader()
	cfg, loadErr := loader.LoadConfig(annotateConfigPath)
	if loadErr != nil {
		cfg = loader.LoadDefaultConfig()
	}
	cfg = loader.MergeConfig(cfg, flagOverrides(cmd))

	sink := newSink(cfg)
	if loadErr != nil {
		sink.SetFailed(loadErr.Error())
		return &ExitError{Code: 1}
	}

	// Anything escaping the run fails it with its own message
	defer func() {
		if r := recover(); r != nil {
			sink.SetFailed(fmt.Sprint(r))
			err = &ExitError{Code: 1}
		}
	}()

	if vErr := loader.ValidateConfig(cfg); vErr != nil {
		sink.SetFailed(vErr.Error())
		return &ExitError{Code: 1}
	}

	pm := service.NewProgressManager(cfg.Output.Progress)
	defer pm.Close()

	uc, err := app.NewAnnotateUseCaseBuilder().
		WithSink(sink).
		WithProgress(pm).
		Build()
	if err != nil {
		sink.SetFailed(err.Error())
		return &ExitError{Code: 1}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := uc.Execute(ctx, app.AnnotateConfig{
		Pattern:     cfg.Input.Pattern,
		Excludes:    cfg.Input.Exclude,
		Limits:      cfg.Limits.DomainLimits(),
		StepOutputs: cfg.Output.StepOutputs,
	})
	if err != nil {
		sink.SetFailed(err.Error())
		return &ExitError{Code: 1}
	}

	if cfg.Output.Report != "" {
		if wErr := writeReport(result, cfg.Output.Report, domain.OutputFormat(cfg.Output.Format)); wErr != nil {
			sink.Warning(wErr.Error())
		}
	}

	if !result.Passed {
		return &ExitError{Code: result.ExitCode}
	}
	if cs, ok := sink.(*service.ConsoleSink); ok {
		cs.PrintPass(fmt.Sprintf("%d violations, %d annotated", result.Counters.Total, result.Counters.Admitted()))
	}
	return nil
}

// flagOverrides collects the flags set on the command line
func flagOverrides(cmd *cobra.Command) service.ConfigOverrides {
	flags := cmd.Flags()
	o := service.ConfigOverrides{NoProgress: annotateNoProgress}
	if flags.Changed("pattern") {
		o.Pattern = annotatePattern
	}
	if flags.Changed("exclude") {
		o.Excludes = annotateExcludes
	}
	if flags.Changed("report") {
		o.Report = &annotateReportPath
	}
	if flags.Changed("format") {
		o.Format = annotateFormat
	}
	if flags.Changed("sink") {
		o.Sink = annotateSink
	}
	if flags.Changed("log-level") {
		o.LogLevel = annotateLogLevel
	}
	return o
}

// newSink picks the GitHub sink inside Actions and the console sink elsewhere
func newSink(cfg *config.Config) domain.Sink {
	switch cfg.Sink {
	case config.SinkGitHub:
		return actions.NewSink()
	case config.SinkConsole:
		return service.NewConsoleSink(cfg.Logging.Level, cfg.Logging.Format)
	default:
		if actions.IsActions() {
			return actions.NewSink()
		}
		return service.NewConsoleSink(cfg.Logging.Level, cfg.Logging.Format)
	}
}

func writeReport(result *domain.RunResult, path string, format domain.OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return domain.NewOutputError("failed to create run report", err)
	}
	defer file.Close()

	if err := service.NewOutputFormatter().Write(result, format, file); err != nil {
		return domain.NewOutputError("failed to write run report", err)
	}
	return nil
}
