package analyzer

import (
	"github.com/verte-zerg/layoutstat/internal/layout"
)

// slotWeights rates how desirable each slot is to use.
var slotWeights = [layout.Size]int64{
	12, 4, 3, 6, 7, 7, 6, 3, 4, 12,
	3, 1, 0, 0, 6, 6, 0, 0, 1, 3,
	8, 9, 8, 4, 9, 9, 4, 8, 9, 8,
	0, 0,
}

// maxFingerShare is the percentage of keystrokes a finger column may take
// before it is penalised.
var maxFingerShare = [layout.FingerCount]float64{
	layout.Pinky:  7,
	layout.Ring:   12,
	layout.Middle: 13,
	layout.Index:  13,
	layout.Thumb:  25,
}

type column struct {
	finger layout.Finger
	hand   layout.Hand
}

// Heatmap sums slot weight times observed frequency over all slots.
func Heatmap(letters [layout.Size]byte, freq map[byte]int64) int64 {
	var total int64
	for i, c := range letters {
		if f := freq[c]; f > 0 {
			total += slotWeights[i] * f
		}
	}
	return total
}

// ColumnPenalty sums, per finger column, the keystrokes above that
// finger's allowed share of chars.
func ColumnPenalty(table *layout.Table, freq map[byte]int64, chars int64) int64 {
	columns := map[column]int64{}
	for _, c := range table.Letters() {
		f := freq[c]
		if f == 0 {
			continue
		}
		key, _ := table.Lookup(c)
		columns[column{finger: key.Finger, hand: key.Hand}] += f
	}
	var penalty int64
	for col, f := range columns {
		over := float64(f) - maxFingerShare[col.finger]*float64(chars)/100
		if over > 0 {
			penalty += int64(over)
		}
	}
	return penalty
}
