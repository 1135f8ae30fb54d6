package domain

// Sink receives everything a run reports: log lines, the step summary,
// step outputs and the terminal failure.
type Sink interface {
	Debug(message string)
	Info(message string)
	Warning(message string)
	Error(message string)

	// SetFailed marks the run failed with the given reason
	SetFailed(message string)

	// AppendSummary appends markdown to the persistent run summary
	AppendSummary(markdown string) error

	// SetOutput publishes a named step output
	SetOutput(name, value string) error
}

// ReportLoader loads one discovered report into a tagged result
type ReportLoader interface {
	Load(path string) FileResult
}

// ReportDiscoverer expands a pattern into report paths in discovery order
type ReportDiscoverer interface {
	Discover(pattern string, excludes []string) ([]string, error)
}

// ProgressManager creates progress tasks
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks one task
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}
