package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a tag name to lower case and drops the separators
// people use interchangeably in names ("_", "-", ".", spaces), so that
// "image_1", "Image-1" and "image1" compare equal.
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
