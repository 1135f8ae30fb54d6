package actions

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// AppendFile appends content to a runner command file
func AppendFile(path, content string) error {
	if path == "" {
		return fmt.Errorf("no command file path")
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// FormatOutput renders one name/value pair for $GITHUB_OUTPUT using the
// heredoc form, with a random delimiter that cannot occur in the value.
func FormatOutput(name, value string) (string, error) {
	delimiter := "ghadelimiter_" + uuid.NewString()
	if strings.Contains(name, delimiter) {
		return "", fmt.Errorf("unexpected input: name should not contain the delimiter %q", delimiter)
	}
	if strings.Contains(value, delimiter) {
		return "", fmt.Errorf("unexpected input: value should not contain the delimiter %q", delimiter)
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter), nil
}
