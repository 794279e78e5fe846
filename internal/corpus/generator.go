package corpus

import (
	"math/rand"
	"strings"
	"time"
)

// Generator produces synthetic corpora from a word list.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator. A zero seed uses the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Sample joins count words with spaces. Earlier words in the list are
// treated as more frequent, following the usual frequency-ranked lists.
func (g *Generator) Sample(words []string, count int) string {
	if len(words) == 0 || count <= 0 {
		return ""
	}
	weights := make([]float64, len(words))
	total := 0.0
	for i := range words {
		w := 1.0 / float64(i+1)
		weights[i] = w
		total += w
	}

	var b strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		r := g.rnd.Float64() * total
		acc := 0.0
		idx := len(words) - 1
		for j, w := range weights {
			acc += w
			if r <= acc {
				idx = j
				break
			}
		}
		b.WriteString(words[idx])
	}
	return b.String()
}
