// Package match provides name normalization and edit-distance ranking used to
// suggest likely intended names when a reference in a labeling config does not
// resolve.
//
// Key functions:
//   - NormalizeName: folds case and drops separators before comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unresolved one
package match
