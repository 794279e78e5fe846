package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/verte-zerg/layoutstat/internal/model"
)

// Ranked is one layout's result in a comparison.
type Ranked struct {
	Name  string
	Stats *model.Stats
}

var compareColumns = []model.Category{model.SFB, model.SFS, model.LSB, model.FSB, model.InRoll, model.Alt, model.Red}

// RenderComparison prints layouts ranked by score, best first.
func RenderComparison(w io.Writer, results []Ranked) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No layouts to compare.")
		return err
	}
	sorted := make([]Ranked, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stats.Score > sorted[j].Stats.Score
	})

	headers := []string{"#", "Layout", "Score"}
	for _, c := range compareColumns {
		headers = append(headers, c.String())
	}
	rightAlign := map[int]bool{0: true}
	for i := 2; i < len(headers); i++ {
		rightAlign[i] = true
	}
	rows := make([][]string, 0, len(sorted))
	for i, r := range sorted {
		row := []string{fmt.Sprintf("%d", i+1), r.Name, fmt.Sprintf("%.2f", r.Stats.Score)}
		for _, c := range compareColumns {
			row = append(row, fmt.Sprintf("%.2f%%", Percent(r.Stats.Count(c), r.Stats.Chars)))
		}
		rows = append(rows, row)
	}
	return writeTable(w, headers, rows, rightAlign)
}
