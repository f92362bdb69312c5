package labelconfig

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by lookups of names the config does not declare.
var ErrNotFound = errors.New("tag not found")

// SyntaxError reports markup that is not well-formed. No partial model is
// produced when parsing fails with it.
type SyntaxError struct {
	// Line is the 1-based line of the failure, 0 when unknown.
	Line int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("label config syntax error on line %d: %s", e.Line, e.Msg)
	}

	return "label config syntax error: " + e.Msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Validation error codes.
const (
	CodeNonUniqueNames      = "non_unique_names"
	CodeToNameNotFound      = "to_name_not_found"
	CodeRegionInvalid       = "region_invalid"
	CodeControlRemoved      = "control_removed"
	CodeLabelsRemoved       = "labels_removed"
	CodeAnnotationsMismatch = "annotations_incompatible"
	CodeNoObjects           = "no_objects"
)

// ValidationError reports a failed structural, region or consistency check.
// Message is meant to be shown to the user verbatim.
type ValidationError struct {
	Code    string
	Message string
	// Items lists the offending names, labels or tuples.
	Items []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(code string, items []string, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...), Items: items}
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func joinNames(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}
