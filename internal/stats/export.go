package stats

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/layoutstat/internal/model"
)

// Export is the serialisable form of one analysis.
type Export struct {
	Layout    string           `json:"layout" yaml:"layout"`
	Letters   string           `json:"letters" yaml:"letters"`
	Category  string           `json:"category" yaml:"category"`
	Stats     model.Stats      `json:"stats" yaml:"stats"`
	Freq      map[string]int64 `json:"freq" yaml:"freq"`
	TopNgrams []ExportNgram    `json:"top_ngrams,omitempty" yaml:"top_ngrams,omitempty"`
}

// ExportNgram is one row of the top n-gram list.
type ExportNgram struct {
	Ngram string `json:"ngram" yaml:"ngram"`
	Count int64  `json:"count" yaml:"count"`
}

// NewExport collects an analysis into an Export, keeping the top n-grams.
func NewExport(name, letters string, category model.Category, s *model.Stats, top int) Export {
	e := Export{
		Layout:   name,
		Letters:  letters,
		Category: category.String(),
		Stats:    *s,
		Freq:     make(map[string]int64, len(s.Freq)),
	}
	for c, n := range s.Freq {
		e.Freq[string([]byte{c})] = n
	}
	for _, item := range TopNgrams(s.Ngrams, top) {
		e.TopNgrams = append(e.TopNgrams, ExportNgram{Ngram: FormatNgram(item.Ngram), Count: item.Count})
	}
	return e
}

// WriteExport encodes e as "json" or "yaml".
func WriteExport(w io.Writer, format string, e Export) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (available: text, json, yaml)", format)
}
