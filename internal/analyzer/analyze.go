// Package analyzer replays a corpus over a keyboard layout and scores it.
//
// Analyze makes one pass over the corpus. For every character it classifies
// the adjacent pair, the distance-two pair and the trailing triple, adds the
// outcome to a fresh model.Stats, and records n-grams of the requested
// category. After the pass it computes the heatmap, the column penalty and
// the final score. Nothing is shared between calls except immutable tables,
// so independent analyses may run concurrently.
package analyzer

import (
	"fmt"

	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

// Options configures a single analysis.
type Options struct {
	// Category selects which n-grams are recorded in Stats.Ngrams.
	Category model.Category
	// Magic enables the digraph preprocessor.
	Magic bool
	// MagicRules pairs layout characters with the character their magic
	// keystroke stands for. Unlisted characters pair with themselves.
	MagicRules map[byte]byte
	// IncludeThumbAlt and IncludeThumbRoll credit thumb keys in trigram
	// categories. When both are off, thumb keystrokes are removed from Chars.
	IncludeThumbAlt  bool
	IncludeThumbRoll bool
	// EpicInequality advances the opposite-hand anchor whenever the current
	// hand differs from it. The default keeps the historical comparison.
	EpicInequality bool
	// Weights overrides model.DefaultWeights.
	Weights *model.Weights
	// Trigrams overrides the default RollClassifier.
	Trigrams TrigramClassifier
}

// Analyze builds the layout table for letters and runs AnalyzeTable.
func Analyze(corpus, letters string, opts Options) (*model.Stats, error) {
	table, err := layout.Build(letters)
	if err != nil {
		return nil, err
	}
	return AnalyzeTable(corpus, table, opts)
}

// AnalyzeTable replays corpus over table.
func AnalyzeTable(corpus string, table *layout.Table, opts Options) (*model.Stats, error) {
	if opts.Magic {
		corpus = ApplyDigraphs(corpus, DigraphRules(table.Letters(), opts.MagicRules))
	}
	sc := newScanner(table, opts)
	for i := 0; i < len(corpus); i++ {
		if err := sc.step(i, corpus[i]); err != nil {
			return nil, err
		}
	}
	stats := sc.finish()
	weights := model.DefaultWeights
	if opts.Weights != nil {
		weights = *opts.Weights
	}
	stats.Score = Score(stats, weights)
	return stats, nil
}

type scanner struct {
	table    *layout.Table
	opts     Options
	trigrams TrigramClassifier
	stats    *model.Stats

	previous     byte
	skipPrevious byte
	epicPrevious byte
}

func newScanner(table *layout.Table, opts Options) *scanner {
	trigrams := opts.Trigrams
	if trigrams == nil {
		trigrams = RollClassifier{
			IncludeThumbAlt:  opts.IncludeThumbAlt,
			IncludeThumbRoll: opts.IncludeThumbRoll,
		}
	}
	return &scanner{
		table:        table,
		opts:         opts,
		trigrams:     trigrams,
		stats:        model.NewStats(),
		previous:     layout.Sentinel,
		skipPrevious: layout.Sentinel,
		epicPrevious: layout.Sentinel,
	}
}

func (s *scanner) step(offset int, letter byte) error {
	key, ok := s.table.Lookup(letter)
	if !ok {
		if s.opts.Magic && letter == Filler {
			return nil
		}
		return &UnmappedCharError{Char: letter, Offset: offset}
	}
	prevKey, _ := s.table.Resolve(s.previous)
	skipKey, _ := s.table.Resolve(s.skipPrevious)
	epicKey, _ := s.table.Resolve(s.epicPrevious)

	s.stats.Chars++
	s.stats.Freq[letter]++

	bigram, err := ClassifyBigram(prevKey, key)
	if err != nil {
		return fmt.Errorf("bigram at offset %d: %w", offset, err)
	}
	s.applyBigram(bigram, s.previous, letter)

	skipgram, err := ClassifySkipgram(skipKey, key, epicKey)
	if err != nil {
		return fmt.Errorf("skipgram at offset %d: %w", offset, err)
	}
	s.applySkipgram(skipgram, letter)

	trigram := s.trigrams.ClassifyTrigram(skipKey, prevKey, key)
	s.applyTrigram(trigram, letter)

	if s.advanceEpic(epicKey, key) {
		s.epicPrevious = letter
	}
	s.skipPrevious = s.previous
	s.previous = letter
	return nil
}

func (s *scanner) applyBigram(r BigramResult, first, second byte) {
	s.stats.Bigrams++
	s.stats.Add(r.Category, 1)
	s.stats.FSpeed += r.Cost
	if !r.Bad() {
		return
	}
	s.stats.BadBigrams[model.Bigram{first, second}] += r.Weight
	if r.Category == s.opts.Category {
		s.stats.RecordNgram(model.Ngram{first, second, model.PairPlaceholder})
	}
}

func (s *scanner) applySkipgram(r SkipgramResult, letter byte) {
	s.stats.Skipgrams++
	s.stats.Add(r.Skip, 1)
	s.stats.FSpeed += r.Cost
	if r.EpicChecked {
		s.stats.Skipgrams++
		s.stats.Add(r.Epic, 1)
	}
	if r.Matches(s.opts.Category) {
		s.stats.RecordNgram(model.Ngram{s.skipPrevious, model.GapPlaceholder, letter})
	}
}

func (s *scanner) applyTrigram(r TrigramResult, letter byte) {
	s.stats.Trigrams++
	if r.Thumb {
		s.stats.ThumbStat++
	}
	s.stats.Add(r.Category, 1)
	if r.Category != model.CategoryNone && r.Category == s.opts.Category {
		s.stats.RecordNgram(model.Ngram{s.skipPrevious, s.previous, letter})
	}
}

// advanceEpic decides whether the current key becomes the new opposite-hand
// anchor. The historical rule compares the bitwise complement of the
// anchor's hand with the current hand and so never fires for a real key.
func (s *scanner) advanceEpic(epic, cur layout.Key) bool {
	if s.opts.EpicInequality {
		return epic.Hand != cur.Hand
	}
	return ^uint8(epic.Hand) == uint8(cur.Hand)
}

func (s *scanner) finish() *model.Stats {
	st := s.stats
	if !(s.opts.IncludeThumbAlt || s.opts.IncludeThumbRoll) {
		st.Chars -= st.ThumbStat
	}
	st.Heatmap = Heatmap(s.table.Letters(), st.Freq)
	st.ColumnPen = ColumnPenalty(s.table, st.Freq, st.Chars)
	return st
}
