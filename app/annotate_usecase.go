package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ludo-technologies/csannotate/domain"
	"github.com/ludo-technologies/csannotate/internal/budget"
	"github.com/ludo-technologies/csannotate/internal/config"
	"github.com/ludo-technologies/csannotate/internal/constants"
	"github.com/ludo-technologies/csannotate/internal/version"
	"github.com/ludo-technologies/csannotate/service"
)

// AnnotateConfig holds configuration for the annotate use case
type AnnotateConfig struct {
	Pattern     string
	Excludes    []string
	Limits      domain.Limits
	StepOutputs bool
}

// DefaultAnnotateConfig returns default configuration
func DefaultAnnotateConfig() AnnotateConfig {
	return AnnotateConfig{
		Pattern:     config.DefaultPattern,
		Limits:      domain.DefaultLimits(),
		StepOutputs: true,
	}
}

// AnnotateUseCase turns Checkstyle reports into annotations in one pass
type AnnotateUseCase struct {
	discoverer domain.ReportDiscoverer
	loader     domain.ReportLoader
	reporter   *service.AnnotationReporter
	sink       domain.Sink
	progress   domain.ProgressManager
}

// Execute discovers, loads and annotates every report. Per-file failures are
// logged and skipped; only discovery failures and cancellation return an error.
// A raw "error" violation marks the sink failed but is not an error here.
func (uc *AnnotateUseCase) Execute(ctx context.Context, config AnnotateConfig) (*domain.RunResult, error) {
	startTime := time.Now()

	files, err := uc.discoverer.Discover(config.Pattern, config.Excludes)
	if err != nil {
		return nil, domain.NewDiscoveryError("failed to find Checkstyle reports", err)
	}
	if len(files) == 0 {
		uc.sink.Debug(fmt.Sprintf("No Checkstyle files matched pattern: %s", config.Pattern))
	}

	task := uc.progress.StartTask("Reading Checkstyle reports", len(files))
	defer task.Complete()

	alloc := budget.NewAllocator(config.Limits)
	result := &domain.RunResult{
		RunID:      uuid.NewString(),
		Pattern:    config.Pattern,
		Limits:     config.Limits,
		Files:      make([]domain.FileResult, 0, len(files)),
		Violations: []domain.AnnotatedViolation{},
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		uc.sink.Debug("Reading Checkstyle file: " + path)
		fr := uc.loader.Load(path)
		uc.warnOnFailure(fr)

		if fr.OK() {
			for _, f := range fr.Document.Files {
				for _, raw := range f.Violations {
					result.Violations = append(result.Violations, uc.annotate(alloc, f.Name, raw))
				}
			}
		}

		result.Files = append(result.Files, fr)
		task.Increment(1)
	}

	uc.reporter.WriteConsolidated(uc.sink, result.Violations)

	counters := alloc.Counters()
	uc.reporter.WriteSummary(uc.sink, counters, config.Limits)

	result.Counters = counters
	result.Breakdown = counters.Breakdown(config.Limits)
	result.FoundErrors = alloc.FoundErrors()
	result.Passed = !result.FoundErrors
	if !result.Passed {
		result.ExitCode = 1
	}

	if config.StepOutputs {
		uc.publishOutputs(result)
	}

	if result.FoundErrors {
		uc.sink.SetFailed(constants.FailureMessage)
	}

	result.Duration = time.Since(startTime).Milliseconds()
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	result.Version = version.GetVersion()
	return result, nil
}

// annotate normalizes one record, runs it through the allocator and emits
// its directive immediately when admitted
func (uc *AnnotateUseCase) annotate(alloc *budget.Allocator, file string, raw domain.RawViolation) domain.AnnotatedViolation {
	v := domain.NewViolation(file, raw)
	av := domain.AnnotatedViolation{
		Violation:    v,
		RelativePath: uc.reporter.RelativePath(v.File),
		Decision:     alloc.Next(v),
	}
	if av.Decision.IsAdmitted() {
		uc.sink.Info(uc.reporter.FormatDirective(av))
	}
	return av
}

func (uc *AnnotateUseCase) warnOnFailure(fr domain.FileResult) {
	switch fr.Status {
	case domain.FileStatusMissing:
		uc.sink.Warning("File not found: " + fr.Path)
	case domain.FileStatusUnreadable:
		uc.sink.Warning("Failed to read file: " + fr.Path)
	case domain.FileStatusParseError:
		uc.sink.Warning(fmt.Sprintf("Failed to parse XML in file: %s. %s", fr.Path, fr.Error))
	}
}

func (uc *AnnotateUseCase) publishOutputs(result *domain.RunResult) {
	c := result.Counters
	outputs := []struct {
		name  string
		value string
	}{
		{"total", strconv.Itoa(c.Total)},
		{"reported", strconv.Itoa(c.Admitted())},
		{"omitted", strconv.Itoa(c.Skipped)},
		{"errors", strconv.Itoa(c.Errors)},
		{"warnings", strconv.Itoa(c.Warnings)},
		{"notices", strconv.Itoa(c.Notices)},
		{"passed", strconv.FormatBool(result.Passed)},
	}
	for _, o := range outputs {
		if err := uc.sink.SetOutput(o.name, o.value); err != nil {
			uc.sink.Debug(fmt.Sprintf("Skipping step outputs: %v", err))
			return
		}
	}
}

// AnnotateUseCaseBuilder builds an AnnotateUseCase
type AnnotateUseCaseBuilder struct {
	discoverer domain.ReportDiscoverer
	loader     domain.ReportLoader
	reporter   *service.AnnotationReporter
	sink       domain.Sink
	progress   domain.ProgressManager
}

// NewAnnotateUseCaseBuilder creates a new builder
func NewAnnotateUseCaseBuilder() *AnnotateUseCaseBuilder {
	return &AnnotateUseCaseBuilder{}
}

// WithDiscoverer sets the report discoverer
func (b *AnnotateUseCaseBuilder) WithDiscoverer(d domain.ReportDiscoverer) *AnnotateUseCaseBuilder {
	b.discoverer = d
	return b
}

// WithLoader sets the report loader
func (b *AnnotateUseCaseBuilder) WithLoader(l domain.ReportLoader) *AnnotateUseCaseBuilder {
	b.loader = l
	return b
}

// WithReporter sets the annotation reporter
func (b *AnnotateUseCaseBuilder) WithReporter(r *service.AnnotationReporter) *AnnotateUseCaseBuilder {
	b.reporter = r
	return b
}

// WithSink sets the output sink
func (b *AnnotateUseCaseBuilder) WithSink(s domain.Sink) *AnnotateUseCaseBuilder {
	b.sink = s
	return b
}

// WithProgress sets the progress manager
func (b *AnnotateUseCaseBuilder) WithProgress(pm domain.ProgressManager) *AnnotateUseCaseBuilder {
	b.progress = pm
	return b
}

// Build creates the AnnotateUseCase. A sink is required; everything else
// defaults to the local filesystem.
func (b *AnnotateUseCaseBuilder) Build() (*AnnotateUseCase, error) {
	if b.sink == nil {
		return nil, fmt.Errorf("sink is required")
	}

	uc := &AnnotateUseCase{
		discoverer: b.discoverer,
		loader:     b.loader,
		reporter:   b.reporter,
		sink:       b.sink,
		progress:   b.progress,
	}

	if uc.discoverer == nil {
		uc.discoverer = NewFileHelper()
	}
	if uc.loader == nil {
		uc.loader = service.NewReportLoader()
	}
	if uc.reporter == nil {
		workDir := "."
		if fh, ok := uc.discoverer.(*FileHelper); ok {
			workDir = fh.WorkDir()
		}
		uc.reporter = service.NewAnnotationReporter(workDir)
	}
	if uc.progress == nil {
		uc.progress = &service.NoOpProgressManager{}
	}

	return uc, nil
}
