package service

import (
	"github.com/ludo-technologies/csannotate/domain"
	"github.com/ludo-technologies/csannotate/internal/checkstyle"
	"github.com/spf13/afero"
)

// ReportLoaderImpl loads Checkstyle reports from a filesystem
type ReportLoaderImpl struct {
	fs afero.Fs
}

// NewReportLoader creates a loader backed by the OS filesystem
func NewReportLoader() *ReportLoaderImpl {
	return NewReportLoaderWithFs(afero.NewOsFs())
}

// NewReportLoaderWithFs creates a loader backed by fs
func NewReportLoaderWithFs(fs afero.Fs) *ReportLoaderImpl {
	return &ReportLoaderImpl{fs: fs}
}

// Load reads and decodes one report. Failures are reported through the
// result status; Load never returns an error.
func (l *ReportLoaderImpl) Load(path string) domain.FileResult {
	result := domain.FileResult{Path: path}

	exists, err := afero.Exists(l.fs, path)
	if err != nil || !exists {
		result.Status = domain.FileStatusMissing
		return result
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		result.Status = domain.FileStatusUnreadable
		result.Error = domain.NewReadError(path, err).Error()
		return result
	}

	doc, err := checkstyle.Parse(data)
	if err != nil {
		result.Status = domain.FileStatusParseError
		result.Error = err.Error()
		return result
	}

	result.Status = domain.FileStatusOK
	result.Document = doc
	for _, f := range doc.Files {
		result.Violations += len(f.Violations)
	}
	return result
}
