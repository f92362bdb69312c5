package usage

import (
	"fmt"
	"strings"
)

// LabelCounts maps control name -> label value -> usage count.
type LabelCounts map[string]map[string]int

// TupleCounts maps an annotation tag-tuple string to its occurrence count.
type TupleCounts map[string]int

// Merge sums two label counters into a new one. Neither input is modified.
//
//	{"sentiment": {"Negative": 1, "Positive": 1}} +
//	{"sentiment": {"Positive": 2, "Neutral": 1}} =
//	{"sentiment": {"Negative": 1, "Positive": 3, "Neutral": 1}}
func Merge(a, b LabelCounts) LabelCounts {
	out := make(LabelCounts, len(a)+len(b))

	for _, src := range []LabelCounts{a, b} {
		for control, labels := range src {
			dst, ok := out[control]
			if !ok {
				dst = make(map[string]int, len(labels))
				out[control] = dst
			}

			for label, n := range labels {
				dst[label] += n
			}
		}
	}

	return out
}

// Total returns the sum of all label uses under control.
func (lc LabelCounts) Total(control string) int {
	total := 0
	for _, n := range lc[control] {
		total += n
	}

	return total
}

// Tuple identifies one control/object binding occurrence in annotation data.
type Tuple struct {
	FromName string
	// ToName holds one or more object names; several are joined with ",".
	ToName []string
	// Type is the lower-cased control type.
	Type string
}

// FormatTuple renders the "from_name|to_name|type" key. Multiple target names
// are joined with "," and the type is lower-cased.
func FormatTuple(fromName string, toName []string, typ string) string {
	return strings.Join([]string{fromName, strings.Join(toName, ","), strings.ToLower(typ)}, "|")
}

// String implements fmt.Stringer.
func (t Tuple) String() string {
	return FormatTuple(t.FromName, t.ToName, t.Type)
}

// ParseTuple splits a "from_name|to_name|type" key.
func ParseTuple(s string) (Tuple, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 3 {
		return Tuple{}, fmt.Errorf("malformed annotation tuple %q: want from_name|to_name|type", s)
	}

	var toName []string

	for _, n := range strings.Split(parts[1], ",") {
		if n = strings.TrimSpace(n); n != "" {
			toName = append(toName, n)
		}
	}

	return Tuple{FromName: parts[0], ToName: toName, Type: strings.ToLower(parts[2])}, nil
}

// DisplayCount renders a pluralized count such as "1 draft" or
// "3 annotations". Zero renders as "".
func DisplayCount(count int, noun string) string {
	switch {
	case count == 0:
		return ""
	case count == 1 || count == -1:
		return fmt.Sprintf("%d %s", count, noun)
	default:
		return fmt.Sprintf("%d %ss", count, noun)
	}
}
