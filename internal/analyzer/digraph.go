package analyzer

import (
	"strings"

	"github.com/verte-zerg/layoutstat/internal/layout"
)

// Filler replaces the second character of a collapsed digraph.
const Filler byte = '*'

// Rule collapses Key followed by Next into Key followed by Filler.
type Rule struct {
	Key  byte
	Next byte
}

// DigraphRules builds one rule per layout slot, in slot order. Characters
// without a configured pair collapse their own repeat.
func DigraphRules(letters [layout.Size]byte, magic map[byte]byte) []Rule {
	rules := make([]Rule, 0, len(letters))
	for _, c := range letters {
		next, ok := magic[c]
		if !ok {
			next = c
		}
		rules = append(rules, Rule{Key: c, Next: next})
	}
	return rules
}

// ApplyDigraphs rewrites the corpus rule by rule. Each rule sees the output
// of the previous one, so order changes the result on overlapping input.
func ApplyDigraphs(corpus string, rules []Rule) string {
	for _, r := range rules {
		corpus = strings.ReplaceAll(corpus, string([]byte{r.Key, r.Next}), string([]byte{r.Key, Filler}))
	}
	return corpus
}
