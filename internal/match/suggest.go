package match

import (
	"sort"
)

// MinSuggestScore is the lowest similarity a known name needs to be suggested.
const MinSuggestScore = 0.5

// Candidate is a known name scored against an unresolved one.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every known name against target (after normalization) and
// returns them sorted by descending score, ties broken by name.
func Rank(target string, known []string) []Candidate {
	norm := NormalizeName(target)
	out := make([]Candidate, 0, len(known))

	for _, name := range known {
		out = append(out, Candidate{Name: name, Score: Similarity(norm, NormalizeName(name))})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Suggest returns up to limit known names that plausibly were meant instead of
// target. A non-positive limit means no limit.
func Suggest(target string, known []string, limit int) []string {
	var out []string

	for _, c := range Rank(target, known) {
		if c.Score < MinSuggestScore {
			break
		}

		out = append(out, c.Name)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}
