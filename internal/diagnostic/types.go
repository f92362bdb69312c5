package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"lsconfig/internal/common"
)

// Diagnostics holds all findings from a parse/link pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Tag is the name attribute of the element the finding relates to (if any).
	Tag string
	// Attr is the offending attribute or referenced value (if any).
	Attr string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the bucket matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, tag, attr string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Tag: tag, Attr: attr})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, tag, attr string, suggestions ...string) {
	d.Add(Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Tag:         tag,
		Attr:        attr,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, tag, attr string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Tag: tag, Attr: attr})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the number of findings of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every finding, errors first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, d.Len())
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// ByCode returns the findings carrying the given code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Reset drops all findings with the given code.
func (d *Diagnostics) Reset(code string) {
	keep := func(in []Diagnostic) []Diagnostic {
		out := in[:0]
		for _, diag := range in {
			if diag.Code != code {
				out = append(out, diag)
			}
		}

		return out
	}

	d.Errors = keep(d.Errors)
	d.Warnings = keep(d.Warnings)
	d.Infos = keep(d.Infos)
}

// Clone returns a copy that shares no slices with d.
func (d *Diagnostics) Clone() Diagnostics {
	clone := func(in []Diagnostic) []Diagnostic {
		if in == nil {
			return nil
		}

		out := make([]Diagnostic, len(in))
		for i, diag := range in {
			diag.Suggestions = append([]string(nil), diag.Suggestions...)
			out[i] = diag
		}

		return out
	}

	return Diagnostics{Errors: clone(d.Errors), Warnings: clone(d.Warnings), Infos: clone(d.Infos)}
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Tag != "" {
		prefix = append(prefix, "["+d.Tag+"]")
	}

	if d.Attr != "" {
		prefix = append(prefix, d.Attr)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
