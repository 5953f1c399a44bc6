package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum score for a name to be suggested.
const DefaultThreshold = 0.6

// Suggestion is a known name with its similarity to the requested one.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name. The result is sorted by score,
// best first, and by name on ties.
func Rank(name string, candidates []string) []Suggestion {
	res := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, Suggestion{Name: c, Score: Score(name, c)})
	}

	slices.SortFunc(res, func(a, b Suggestion) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return res
}

// Suggest returns at most limit candidates scoring at least threshold.
func Suggest(name string, candidates []string, threshold float64, limit int) []string {
	var res []string
	for _, s := range Rank(name, candidates) {
		if s.Score < threshold || len(res) >= limit {
			break
		}
		res = append(res, s.Name)
	}

	return res
}

// Closest returns the best candidate scoring at least DefaultThreshold.
func Closest(name string, candidates []string) (string, bool) {
	best := Suggest(name, candidates, DefaultThreshold, 1)
	if len(best) == 0 {
		return "", false
	}

	return best[0], true
}
