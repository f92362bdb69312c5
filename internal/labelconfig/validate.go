package labelconfig

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"lsconfig/internal/common"
	"lsconfig/internal/diagnostic"
	"lsconfig/internal/tags"
)

var (
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	namePattern    = attrPattern(tags.AttrName)
	toNamePattern  = attrPattern(tags.AttrToName)
)

// attrPattern matches attr="v" or attr='v' with optional spaces around "=".
func attrPattern(attr string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|\s)` + attr + `\s*=\s*(?:"([^"]*)"|'([^']*)')`)
}

// attrValues returns every value of the attribute matched by re, in text
// order. Comments are skipped.
func attrValues(text string, re *regexp.Regexp) []string {
	text = commentPattern.ReplaceAllString(text, "")

	var out []string

	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			out = append(out, m[1])
		} else {
			out = append(out, m[2])
		}
	}

	return out
}

// ValidateUniqueNames fails when any name attribute value occurs twice. It
// reads the raw text, so it catches duplicates the parser overwrote.
func ValidateUniqueNames(text string) error {
	seen := map[string]int{}
	for _, name := range attrValues(text, namePattern) {
		seen[name]++
	}

	var repeated []string

	for name, n := range seen {
		if n > 1 {
			repeated = append(repeated, name)
		}
	}

	if len(repeated) == 0 {
		return nil
	}

	sort.Strings(repeated)

	return newValidationError(CodeNonUniqueNames, repeated,
		"Label config contains non-unique names: %s", strings.Join(repeated, ", "))
}

// ValidateToNameReferences fails on the first toName entry that is not the
// name of some element.
func ValidateToNameReferences(text string) error {
	names := common.Dedup(attrValues(text, namePattern))
	sort.Strings(names)

	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[n] = struct{}{}
	}

	for _, value := range attrValues(text, toNamePattern) {
		for _, target := range tags.SplitNames(value) {
			if _, ok := known[target]; !ok {
				return newValidationError(CodeToNameNotFound, []string{target},
					"toName=%q not found in names: %s", target, joinNames(names))
			}
		}
	}

	return nil
}

// ValidateText checks that text is well-formed markup with unique names and
// resolvable toName references. Malformed markup fails with *SyntaxError, the
// other checks with *ValidationError.
func ValidateText(text string) error {
	if _, err := parseMarkup(text); err != nil {
		return err
	}

	return validateStructure(text)
}

func validateStructure(text string) error {
	if err := ValidateUniqueNames(text); err != nil {
		return err
	}

	return ValidateToNameReferences(text)
}

// IsValid reports whether text passes ValidateText. Only validation failures
// become false; a syntax error is returned.
func IsValid(text string) (bool, error) {
	err := ValidateText(text)
	if err == nil {
		return true, nil
	}

	if IsValidationError(err) {
		return false, nil
	}

	return false, err
}

// Validate runs the structural checks against the config's source text.
func (c *LabelingConfig) Validate() error {
	return validateStructure(c.text)
}

// IsValid reports whether Validate passes.
func (c *LabelingConfig) IsValid() bool {
	d := c.Check()
	return d.IsValid()
}

// Check returns the parse and link findings plus one error finding for every
// failed structural check. Unlike Validate it runs all checks.
func (c *LabelingConfig) Check() diagnostic.Diagnostics {
	var failed diagnostic.Diagnostics

	for _, check := range []func(string) error{ValidateUniqueNames, ValidateToNameReferences} {
		var ve *ValidationError
		if err := check(c.text); errors.As(err, &ve) {
			failed.AddError(ve.Code, ve.Message, "", strings.Join(ve.Items, ", "))
		}
	}

	out := c.diags.Clone()
	out.Merge(failed)

	return out
}
