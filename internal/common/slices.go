package common

import (
	"cmp"
	"slices"
)

// UnknownStr is printed for enum values outside their declared range.
const UnknownStr = "unknown"

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Dedup returns s without repeated elements, keeping the first occurrence of each.
func Dedup[S ~[]E, E comparable](s S) S {
	if len(s) < 2 {
		return s
	}

	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))

	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}

// IsSubset reports whether every element of sub is present in super.
func IsSubset[E comparable](sub, super []E) bool {
	set := make(map[E]struct{}, len(super))
	for _, e := range super {
		set[e] = struct{}{}
	}

	for _, e := range sub {
		if _, ok := set[e]; !ok {
			return false
		}
	}

	return true
}
