package service

import (
	"strings"
	"testing"

	"github.com/ludo-technologies/csannotate/domain"
	"github.com/ludo-technologies/csannotate/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return fs
}

func TestReportLoader_OK(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/work/target/checkstyle-result.xml": testutil.ReportXML(
			testutil.File{Name: "Foo.java", Errors: testutil.Repeat(3, "warning", "w")},
			testutil.File{Name: "Bar.java", Errors: testutil.Repeat(2, "error", "e")},
		),
	})

	result := NewReportLoaderWithFs(fs).Load("/work/target/checkstyle-result.xml")

	assert.True(t, result.OK())
	assert.Equal(t, domain.FileStatusOK, result.Status)
	assert.Equal(t, 5, result.Violations)
	assert.Empty(t, result.Error)
	require.NotNil(t, result.Document)
	assert.Len(t, result.Document.Files, 2)
}

func TestReportLoader_Missing(t *testing.T) {
	result := NewReportLoaderWithFs(afero.NewMemMapFs()).Load("/nowhere/report.xml")

	assert.Equal(t, domain.FileStatusMissing, result.Status)
	assert.Equal(t, "/nowhere/report.xml", result.Path)
	assert.Nil(t, result.Document)
}

func TestReportLoader_ParseError(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/r/broken.xml": "<checkstyle><file name=\"a\">",
		"/r/empty.xml":  "",
	})
	loader := NewReportLoaderWithFs(fs)

	for _, path := range []string{"/r/broken.xml", "/r/empty.xml"} {
		result := loader.Load(path)
		assert.Equal(t, domain.FileStatusParseError, result.Status, path)
		assert.NotEmpty(t, result.Error, path)
		assert.Nil(t, result.Document, path)
	}
}

func TestReportLoader_Unreadable(t *testing.T) {
	// A directory exists but cannot be read as a file
	dir := t.TempDir()

	result := NewReportLoader().Load(dir)

	assert.Equal(t, domain.FileStatusUnreadable, result.Status)
	assert.True(t, strings.Contains(result.Error, dir), "error should name the path: %s", result.Error)
}

func TestReportLoader_OtherRoot(t *testing.T) {
	fs := memFs(t, map[string]string{"/r/pmd.xml": `<pmd><file name="a.java"/></pmd>`})

	result := NewReportLoaderWithFs(fs).Load("/r/pmd.xml")

	assert.True(t, result.OK())
	assert.Equal(t, 0, result.Violations)
}
