package corpus

import "github.com/verte-zerg/layoutstat/internal/layout"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// TypeableOn keeps words whose every byte the layout maps.
func TypeableOn(table *layout.Table) FilterFunc {
	return func(word string) bool {
		if word == "" {
			return false
		}
		for i := 0; i < len(word); i++ {
			if !table.Has(word[i]) {
				return false
			}
		}
		return true
	}
}

// Filter returns the words accepted by keep.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
