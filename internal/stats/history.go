package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/layoutstat/internal/model"
)

// RenderHistory prints saved runs and a sparkline of their scores.
func RenderHistory(w io.Writer, runs []model.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	rows := make([][]string, 0, len(runs))
	scores := make([]float64, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.LayoutName,
			fmt.Sprintf("%d", r.Chars),
			fmt.Sprintf("%.2f", r.Score),
		})
		scores = append(scores, r.Score)
	}
	if err := writeTable(w, []string{"ID", "Date", "Layout", "Chars", "Score"}, rows, map[int]bool{0: true, 3: true, 4: true}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Score trend: %s\n", Sparkline(scores))
	return err
}
