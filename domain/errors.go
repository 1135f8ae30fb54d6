package domain

import "fmt"

// Error codes for domain errors
const (
	ErrCodeDiscoveryError    = "DISCOVERY_ERROR"
	ErrCodeReadError         = "READ_ERROR"
	ErrCodeConfigError       = "CONFIG_ERROR"
	ErrCodeOutputError       = "OUTPUT_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// DomainError is an error carrying a machine-readable code
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewDiscoveryError creates an error for failed report discovery
func NewDiscoveryError(message string, cause error) error {
	return DomainError{Code: ErrCodeDiscoveryError, Message: message, Cause: cause}
}

// NewReadError creates an error for an unreadable report
func NewReadError(path string, cause error) error {
	return DomainError{Code: ErrCodeReadError, Message: fmt.Sprintf("failed to read %s", path), Cause: cause}
}

// NewConfigError creates an error for invalid configuration
func NewConfigError(message string, cause error) error {
	return DomainError{Code: ErrCodeConfigError, Message: message, Cause: cause}
}

// NewOutputError creates an error for failed output
func NewOutputError(message string, cause error) error {
	return DomainError{Code: ErrCodeOutputError, Message: message, Cause: cause}
}

// NewUnsupportedFormatError creates an error for an unknown output format
func NewUnsupportedFormatError(format string) error {
	return DomainError{Code: ErrCodeUnsupportedFormat, Message: fmt.Sprintf("unsupported format: %s", format)}
}
