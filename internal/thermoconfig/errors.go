package thermoconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeParse indicates the file is not a well-formed mapping document,
	// or a field holds a value of the wrong shape
	ErrTypeParse ErrorType = iota
	// ErrTypeMissingSection indicates a required top-level section is absent
	ErrTypeMissingSection
	// ErrTypeMissingField indicates a required field of the app section is absent
	ErrTypeMissingField
	// ErrTypeIO indicates the file could not be read or written
	ErrTypeIO
	// ErrTypeEncode indicates the document could not be serialized
	ErrTypeEncode
)

// Sentinels for errors.Is matching against a *ConfigError of the same type.
var (
	ErrParse          = errors.New("parse error")
	ErrMissingSection = errors.New("missing section")
	ErrMissingField   = errors.New("missing field")
	ErrIO             = errors.New("i/o error")
	ErrEncode         = errors.New("encode error")
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeMissingSection:
		return "Missing Section"
	case ErrTypeMissingField:
		return "Missing Field"
	case ErrTypeIO:
		return "I/O Error"
	case ErrTypeEncode:
		return "Encode Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

func (et ErrorType) sentinel() error {
	switch et {
	case ErrTypeParse:
		return ErrParse
	case ErrTypeMissingSection:
		return ErrMissingSection
	case ErrTypeMissingField:
		return ErrMissingField
	case ErrTypeIO:
		return ErrIO
	case ErrTypeEncode:
		return ErrEncode
	default:
		return nil
	}
}

// ConfigError represents a failure to load or save the configuration file
type ConfigError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Path    string    // File the operation was working on
	Section string    // Top-level section involved (if applicable)
	Field   string    // App field involved (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, " (file: %s)", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's type
func (e *ConfigError) Is(target error) bool {
	s := e.Type.sentinel()
	return s != nil && target == s
}

// NewParseError creates a parsing error
func NewParseError(path, message string, err error) *ConfigError {
	return &ConfigError{
		Type:    ErrTypeParse,
		Message: message,
		Path:    path,
		Err:     err,
	}
}

// NewFieldParseError creates a parsing error for a single app field holding
// a value of the wrong shape
func NewFieldParseError(path, field, message string) *ConfigError {
	return &ConfigError{
		Type:    ErrTypeParse,
		Message: fmt.Sprintf("field %q: %s", field, message),
		Path:    path,
		Section: SectionApp,
		Field:   field,
	}
}

// NewMissingSectionError creates an error for an absent top-level section
func NewMissingSectionError(path, section string) *ConfigError {
	return &ConfigError{
		Type:    ErrTypeMissingSection,
		Message: fmt.Sprintf("missing required section: %q", section),
		Path:    path,
		Section: section,
	}
}

// NewMissingFieldError creates an error naming the first absent app field
func NewMissingFieldError(path, field string) *ConfigError {
	return &ConfigError{
		Type:    ErrTypeMissingField,
		Message: fmt.Sprintf("missing required config field: %s", field),
		Path:    path,
		Section: SectionApp,
		Field:   field,
	}
}

// NewIOError creates a file access error
func NewIOError(path, message string, err error) *ConfigError {
	return &ConfigError{
		Type:    ErrTypeIO,
		Message: message,
		Path:    path,
		Err:     err,
	}
}

// NewEncodeError creates a serialization error
func NewEncodeError(path string, err error) *ConfigError {
	return &ConfigError{
		Type:    ErrTypeEncode,
		Message: "failed to encode configuration",
		Path:    path,
		Err:     err,
	}
}

func typeOf(err error) (ErrorType, bool) {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Type, true
	}
	return 0, false
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeParse
}

// IsMissingSectionError checks if an error is a missing section error
func IsMissingSectionError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeMissingSection
}

// IsMissingFieldError checks if an error is a missing field error
func IsMissingFieldError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeMissingField
}

// IsIOError checks if an error is a file access error
func IsIOError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeIO
}

// IsEncodeError checks if an error is a serialization error
func IsEncodeError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeEncode
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) []string {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return []string{"An unexpected error occurred. Please try again."}
	}

	switch cfgErr.Type {
	case ErrTypeParse:
		hints := []string{
			"Check the file for indentation or quoting mistakes",
			"The top level must be a mapping with an 'app' section",
		}
		if cfgErr.Field == "set_point" {
			hints = append(hints, "set_point must be a whole number (e.g. 70)")
		}
		if cfgErr.Field == "features" {
			hints = append(hints, "features must be a list (e.g. [temperature_control])")
		}
		return hints

	case ErrTypeMissingSection:
		return []string{
			fmt.Sprintf("Add a '%s:' section to the file", cfgErr.Section),
			"Or delete the file to regenerate the default configuration",
		}

	case ErrTypeMissingField:
		return []string{
			fmt.Sprintf("Add '%s' under the 'app' section", cfgErr.Field),
			"Required fields: " + strings.Join(RequiredFields, ", "),
		}

	case ErrTypeIO:
		hints := []string{"Check that the parent directory exists"}
		if errors.Is(cfgErr.Err, fs.ErrPermission) {
			hints = append(hints, "Check the file and directory permissions")
		}
		return append(hints, "Use --config to point at a writable location")

	case ErrTypeEncode:
		return []string{"The logging section contains values that cannot be written to this format"}

	default:
		return []string{"Please check the error message for details."}
	}
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return err.Error()
	}

	switch cfgErr.Type {
	case ErrTypeParse:
		if cfgErr.Field != "" {
			return fmt.Sprintf("Invalid value for %s", cfgErr.Field)
		}
		return "Configuration file is not valid"
	case ErrTypeMissingSection:
		return fmt.Sprintf("Missing '%s' section", cfgErr.Section)
	case ErrTypeMissingField:
		return fmt.Sprintf("Missing field: %s", cfgErr.Field)
	case ErrTypeIO:
		return "Cannot access configuration file"
	default:
		return cfgErr.Message
	}
}
