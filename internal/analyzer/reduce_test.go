package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

func TestHeatmap(t *testing.T) {
	var letters [layout.Size]byte
	copy(letters[:], qwerty)

	got := Heatmap(letters, map[byte]int64{'q': 2, 'a': 1, ' ': 50})
	require.Equal(t, int64(12*2+3*1), got)
	require.Zero(t, Heatmap(letters, nil))
}

func TestHeatmapCountsDuplicateSlots(t *testing.T) {
	letters := []byte(qwerty)
	letters[9] = 'q'
	table, err := layout.Build(string(letters))
	require.NoError(t, err)

	require.Equal(t, int64(12+12), Heatmap(table.Letters(), map[byte]int64{'q': 1}))
}

func TestColumnPenalty(t *testing.T) {
	table, err := layout.Build(qwerty)
	require.NoError(t, err)

	freq := map[byte]int64{'a': 10, 'q': 10, 'j': 5, 'h': 10, 'd': 5}
	require.Equal(t, int64((20-7)+(15-13)), ColumnPenalty(table, freq, 100))
	require.Zero(t, ColumnPenalty(table, map[byte]int64{'a': 7}, 100))
}

func TestScore(t *testing.T) {
	s := &model.Stats{FSpeed: 70, Heatmap: 200, LSB: 1, InRoll: 2, WeakRed: 1}
	want := -2000.0 - 1000 - 200 + 200 - 2000
	require.InDelta(t, want, Score(s, model.DefaultWeights), 1e-9)
	require.Zero(t, Score(s, model.Weights{}))
}
