package analyzer

import "github.com/verte-zerg/layoutstat/internal/model"

const (
	fspeedDivisor  = 7
	heatmapDivisor = 100
)

// Score reduces an accumulator to a single number using w.
func Score(s *model.Stats, w model.Weights) float64 {
	var score float64
	score += float64(s.FSpeed) / fspeedDivisor * float64(w.FSpeed)
	score += float64(s.Heatmap) / heatmapDivisor * float64(w.Heatmap)
	score += float64(s.ColumnPen * w.ColumnPen)
	score += float64(s.LSB * w.LSB)
	score += float64(s.LSS * w.LSS)
	score += float64(s.HSB * w.HSB)
	score += float64(s.HSS * w.HSS)
	score += float64(s.FSB * w.FSB)
	score += float64(s.FSS * w.FSS)
	score += float64(s.InRoll * w.InRoll)
	score += float64(s.InThreeRoll * w.InThreeRoll)
	score += float64(s.OutRoll * w.OutRoll)
	score += float64(s.OutThreeRoll * w.OutThreeRoll)
	score += float64(s.Alt * w.Alt)
	score += float64(s.Red * w.Red)
	score += float64(s.WeakRed * w.WeakRed)
	return score
}
