package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

func TestTopNgrams(t *testing.T) {
	table := map[model.Ngram]int64{
		{'q', 'z', model.PairPlaceholder}: 3,
		{'e', 'd', model.PairPlaceholder}: 5,
		{'a', 'q', model.PairPlaceholder}: 3,
	}
	top := TopNgrams(table, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 ngrams, got %d", len(top))
	}
	if FormatNgram(top[0].Ngram) != "ed" || FormatNgram(top[1].Ngram) != "aq" {
		t.Fatalf("unexpected order: %v", top)
	}
	if TopNgrams(table, 0) != nil {
		t.Fatalf("expected nil for n=0")
	}
}

func TestFormatNgram(t *testing.T) {
	cases := []struct {
		ng   model.Ngram
		want string
	}{
		{model.Ngram{'t', 'h', model.PairPlaceholder}, "th"},
		{model.Ngram{'t', model.GapPlaceholder, ' '}, "t_␣"},
		{model.Ngram{layout.Sentinel, model.GapPlaceholder, 'a'}, "^_a"},
		{model.Ngram{'t', 'h', 'e'}, "the"},
	}
	for _, tc := range cases {
		if got := FormatNgram(tc.ng); got != tc.want {
			t.Fatalf("FormatNgram(%v) = %q, want %q", tc.ng, got, tc.want)
		}
	}
}

func TestRenderTopNgrams(t *testing.T) {
	var buf bytes.Buffer
	table := map[model.Ngram]int64{{'q', 'z', model.PairPlaceholder}: 3, {'e', 'd', model.PairPlaceholder}: 1}
	if err := RenderTopNgrams(&buf, model.SFB, table, 10); err != nil {
		t.Fatalf("RenderTopNgrams failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Top sfb n-grams") || !strings.Contains(out, "75.00%") {
		t.Fatalf("unexpected output: %s", out)
	}

	buf.Reset()
	if err := RenderTopNgrams(&buf, model.SFS, nil, 10); err != nil {
		t.Fatalf("RenderTopNgrams failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No sfs n-grams recorded.") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
