package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeData(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"100%", "100%25"},
		{"line1\nline2", "line1%0Aline2"},
		{"a\r\nb", "a%0D%0Ab"},
		{"a:b,c", "a:b,c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EscapeData(tt.input), "input %q", tt.input)
	}
}

func TestEscapeProperty(t *testing.T) {
	assert.Equal(t, "a%3Ab%2Cc%25%0A", EscapeProperty("a:b,c%\n"))
}

func TestCommand(t *testing.T) {
	assert.Equal(t, "::debug::hello", Command("debug", nil, "hello"))
	assert.Equal(t, "::warning file=a%2Cb.java,line=3::bad%0Athing",
		Command("warning", map[string]string{"line": "3", "file": "a,b.java"}, "bad\nthing"))
}

func TestIssue(t *testing.T) {
	var buf bytes.Buffer
	Issue(&buf, "error", nil, "boom")
	assert.Equal(t, "::error::boom\n", buf.String())
}

func TestIsActions(t *testing.T) {
	t.Setenv(EnvActions, "true")
	assert.True(t, IsActions())

	t.Setenv(EnvActions, "")
	assert.False(t, IsActions())
}

func TestGetInput(t *testing.T) {
	t.Setenv("INPUT_CHECKSTYLE_FILES", "  **/report.xml \n")
	assert.Equal(t, "**/report.xml", GetInput("checkstyle_files"))
	assert.Equal(t, "**/report.xml", GetInput("checkstyle files"))

	assert.Equal(t, "", GetInput("missing_input"))
}

func TestAppendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")

	require.NoError(t, AppendFile(path, "one\n"))
	require.NoError(t, AppendFile(path, "two\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))

	assert.Error(t, AppendFile("", "x"))
}

func TestFormatOutput(t *testing.T) {
	line, err := FormatOutput("total", "65")
	require.NoError(t, err)

	re := regexp.MustCompile(`^total<<(ghadelimiter_[0-9a-f-]{36})\n65\n(ghadelimiter_[0-9a-f-]{36})\n$`)
	m := re.FindStringSubmatch(line)
	require.NotNil(t, m, "unexpected output format: %q", line)
	assert.Equal(t, m[1], m[2])
}

func TestSink_Commands(t *testing.T) {
	var buf bytes.Buffer
	s := NewSinkWithOptions(&buf, "", "")

	s.Debug("Reading Checkstyle file: a.xml")
	s.Info("::error file=Foo.java,line=1,col=0,title=::x")
	s.Warning("Checkstyle file not found: b.xml")

	failed, _ := s.Failed()
	assert.False(t, failed)

	s.SetFailed("Checkstyle reported errors")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"::debug::Reading Checkstyle file: a.xml",
		"::error file=Foo.java,line=1,col=0,title=::x",
		"::warning::Checkstyle file not found: b.xml",
		"::error::Checkstyle reported errors",
	}, lines)

	failed, reason := s.Failed()
	assert.True(t, failed)
	assert.Equal(t, "Checkstyle reported errors", reason)
}

func TestSink_AppendSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "step_summary")
	s := NewSinkWithOptions(&bytes.Buffer{}, path, "")

	require.NoError(t, s.AppendSummary("## Title"))
	require.NoError(t, s.AppendSummary("body\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## Title\nbody\n", string(data))
}

func TestSink_MissingCommandFiles(t *testing.T) {
	s := NewSinkWithOptions(&bytes.Buffer{}, "", "")

	err := s.AppendSummary("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvStepSummary)

	err = s.SetOutput("total", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvOutput)
}

func TestSink_SetOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	s := NewSinkWithOptions(&bytes.Buffer{}, "", path)

	require.NoError(t, s.SetOutput("passed", "false"))
	require.NoError(t, s.SetOutput("total", "3"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "passed<<ghadelimiter_"))
	assert.Contains(t, content, "\nfalse\n")
	assert.Contains(t, content, "total<<ghadelimiter_")
	assert.Contains(t, content, "\n3\n")
}

func TestNewSink_UsesEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvStepSummary, filepath.Join(dir, "summary"))
	t.Setenv(EnvOutput, filepath.Join(dir, "output"))

	s := NewSink()
	assert.NoError(t, s.AppendSummary("hello"))
	assert.NoError(t, s.SetOutput("k", "v"))
}
