package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/layoutstat/internal/model"
)

// RenderSummary prints every counter of an analysis with its share of
// typed characters, followed by the aggregate scores.
func RenderSummary(w io.Writer, title string, s *model.Stats) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Chars: %d\n\n", s.Chars); err != nil {
		return err
	}

	headers := []string{"Group", "Metric", "Count", "Share"}
	rows := make([][]string, 0, len(model.Categories())+1)
	for _, c := range model.Categories() {
		n := s.Count(c)
		rows = append(rows, []string{
			categoryGroup(c),
			c.String(),
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%.3f%%", Percent(n, s.Chars)),
		})
	}
	rows = append(rows, []string{"trigram", "thumb", fmt.Sprintf("%d", s.ThumbStat), fmt.Sprintf("%.3f%%", Percent(s.ThumbStat, s.Chars))})
	if err := writeTable(w, headers, rows, map[int]bool{2: true, 3: true}); err != nil {
		return err
	}

	totals := [][]string{
		{"Finger speed", fmt.Sprintf("%d", s.FSpeed)},
		{"Heatmap", fmt.Sprintf("%d", s.Heatmap)},
		{"Column penalty", fmt.Sprintf("%d", s.ColumnPen)},
		{"Score", fmt.Sprintf("%.2f", s.Score)},
	}
	return writeTable(w, nil, totals, map[int]bool{1: true})
}

func categoryGroup(c model.Category) string {
	switch {
	case c.IsSkipgram():
		return "skipgram"
	case c.IsTrigram():
		return "trigram"
	}
	return "bigram"
}
