package model

import (
	"fmt"
	"strings"
)

// Category is an n-gram classification bucket.
type Category uint8

// Categories, grouped by the n-gram kind that produces them.
const (
	CategoryNone Category = iota
	SFB
	SFR
	LSB
	HSB
	FSB
	SFS
	LSS
	HSS
	FSS
	InRoll
	OutRoll
	InThreeRoll
	OutThreeRoll
	Alt
	Red
	WeakRed
)

var categoryTokens = map[Category]string{
	CategoryNone: "none",
	SFB:          "sfb",
	SFR:          "sfr",
	LSB:          "lsb",
	HSB:          "hsb",
	FSB:          "fsb",
	SFS:          "sfs",
	LSS:          "lss",
	HSS:          "hss",
	FSS:          "fss",
	InRoll:       "inroll",
	OutRoll:      "outroll",
	InThreeRoll:  "inthreeroll",
	OutThreeRoll: "outthreeroll",
	Alt:          "alt",
	Red:          "red",
	WeakRed:      "weakred",
}

// Categories lists every real category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryTokens)-1)
	for c := SFB; c <= WeakRed; c++ {
		out = append(out, c)
	}
	return out
}

func (c Category) String() string {
	if s, ok := categoryTokens[c]; ok {
		return s
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// IsSkipgram reports whether the category is produced by the skipgram classifier.
func (c Category) IsSkipgram() bool {
	return c >= SFS && c <= FSS
}

// IsTrigram reports whether the category is produced by the trigram classifier.
func (c Category) IsTrigram() bool {
	return c >= InRoll && c <= WeakRed
}

// ParseCategory converts a category token. Empty means none.
func ParseCategory(token string) (Category, error) {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return CategoryNone, nil
	}
	for c, s := range categoryTokens {
		if s == token {
			return c, nil
		}
	}
	names := make([]string, 0, len(categoryTokens))
	for _, c := range Categories() {
		names = append(names, c.String())
	}
	return CategoryNone, fmt.Errorf("unknown category %q (available: %s)", token, strings.Join(names, ", "))
}
