package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

// TopNgrams returns the n most frequent entries of an n-gram table.
// Ties are broken by the rendered n-gram.
func TopNgrams(table map[model.Ngram]int64, n int) []model.NgramCount {
	if n <= 0 || len(table) == 0 {
		return nil
	}
	items := make([]model.NgramCount, 0, len(table))
	for ng, count := range table {
		items = append(items, model.NgramCount{Ngram: ng, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return FormatNgram(items[i].Ngram) < FormatNgram(items[j].Ngram)
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// FormatNgram renders an n-gram key for display. The skipgram gap shows
// as '_', the start of text as '^' and space as '␣'.
func FormatNgram(ng model.Ngram) string {
	var b strings.Builder
	for _, c := range ng {
		switch c {
		case model.PairPlaceholder:
		case model.GapPlaceholder:
			b.WriteByte('_')
		case layout.Sentinel:
			b.WriteByte('^')
		case ' ':
			b.WriteString("␣")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// RenderTopNgrams prints the most frequent n-grams recorded for a category.
func RenderTopNgrams(w io.Writer, category model.Category, table map[model.Ngram]int64, n int) error {
	if category == model.CategoryNone {
		return nil
	}
	top := TopNgrams(table, n)
	if len(top) == 0 {
		_, err := fmt.Fprintf(w, "No %s n-grams recorded.\n\n", category)
		return err
	}
	var total int64
	for _, count := range table {
		total += count
	}
	if _, err := fmt.Fprintf(w, "Top %s n-grams\n", category); err != nil {
		return err
	}
	rows := make([][]string, 0, len(top))
	for i, item := range top {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			FormatNgram(item.Ngram),
			fmt.Sprintf("%d", item.Count),
			fmt.Sprintf("%.2f%%", Percent(item.Count, total)),
		})
	}
	return writeTable(w, []string{"#", "N-gram", "Count", "Share"}, rows, map[int]bool{0: true, 2: true, 3: true})
}
