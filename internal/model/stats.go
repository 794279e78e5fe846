package model

// Ngram keys the n-gram table. Unused positions hold a placeholder.
type Ngram [3]byte

// Placeholders used inside Ngram keys. Both lie outside the single-byte
// range a layout may use, so they never collide with a typed character.
const (
	// PairPlaceholder fills the third position of a bigram.
	PairPlaceholder byte = 0xFF
	// GapPlaceholder fills the middle position of a skipgram.
	GapPlaceholder byte = 0xFE
)

// Bigram keys the bad-bigram table.
type Bigram [2]byte

// Stats accumulates the results of one analysis run.
type Stats struct {
	Chars     int64 `json:"chars" yaml:"chars"`
	Bigrams   int64 `json:"bigrams" yaml:"bigrams"`
	Skipgrams int64 `json:"skipgrams" yaml:"skipgrams"`
	Trigrams  int64 `json:"trigrams" yaml:"trigrams"`

	FSpeed int64 `json:"fspeed" yaml:"fspeed"`

	SFB int64 `json:"sfb" yaml:"sfb"`
	SFR int64 `json:"sfr" yaml:"sfr"`
	SFS int64 `json:"sfs" yaml:"sfs"`
	LSB int64 `json:"lsb" yaml:"lsb"`
	LSS int64 `json:"lss" yaml:"lss"`
	HSB int64 `json:"hsb" yaml:"hsb"`
	HSS int64 `json:"hss" yaml:"hss"`
	FSB int64 `json:"fsb" yaml:"fsb"`
	FSS int64 `json:"fss" yaml:"fss"`

	InRoll       int64 `json:"inroll" yaml:"inroll"`
	OutRoll      int64 `json:"outroll" yaml:"outroll"`
	InThreeRoll  int64 `json:"inthreeroll" yaml:"inthreeroll"`
	OutThreeRoll int64 `json:"outthreeroll" yaml:"outthreeroll"`
	Alt          int64 `json:"alt" yaml:"alt"`
	Red          int64 `json:"red" yaml:"red"`
	WeakRed      int64 `json:"weakred" yaml:"weakred"`
	ThumbStat    int64 `json:"thumb" yaml:"thumb"`

	Heatmap   int64   `json:"heatmap" yaml:"heatmap"`
	ColumnPen int64   `json:"column_pen" yaml:"column_pen"`
	Score     float64 `json:"score" yaml:"score"`

	Freq       map[byte]int64   `json:"-" yaml:"-"`
	Ngrams     map[Ngram]int64  `json:"-" yaml:"-"`
	BadBigrams map[Bigram]int64 `json:"-" yaml:"-"`
}

// NewStats returns an empty accumulator with its tables allocated.
func NewStats() *Stats {
	return &Stats{
		Freq:       map[byte]int64{},
		Ngrams:     map[Ngram]int64{},
		BadBigrams: map[Bigram]int64{},
	}
}

// Count returns the counter for a category.
func (s *Stats) Count(c Category) int64 {
	if p := s.counter(c); p != nil {
		return *p
	}
	return 0
}

// Add increments the counter for a category. CategoryNone is ignored.
func (s *Stats) Add(c Category, n int64) {
	if p := s.counter(c); p != nil {
		*p += n
	}
}

// RecordNgram bumps the n-gram table entry for key.
func (s *Stats) RecordNgram(key Ngram) {
	s.Ngrams[key]++
}

func (s *Stats) counter(c Category) *int64 {
	switch c {
	case SFB:
		return &s.SFB
	case SFR:
		return &s.SFR
	case LSB:
		return &s.LSB
	case HSB:
		return &s.HSB
	case FSB:
		return &s.FSB
	case SFS:
		return &s.SFS
	case LSS:
		return &s.LSS
	case HSS:
		return &s.HSS
	case FSS:
		return &s.FSS
	case InRoll:
		return &s.InRoll
	case OutRoll:
		return &s.OutRoll
	case InThreeRoll:
		return &s.InThreeRoll
	case OutThreeRoll:
		return &s.OutThreeRoll
	case Alt:
		return &s.Alt
	case Red:
		return &s.Red
	case WeakRed:
		return &s.WeakRed
	}
	return nil
}
