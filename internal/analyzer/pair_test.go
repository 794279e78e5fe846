package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

const qwerty = "qwertyuiopasdfghjkl;zxcvbnm,./ *"

func keysFor(t *testing.T, letters string) func(byte) layout.Key {
	t.Helper()
	table, err := layout.Build(letters)
	require.NoError(t, err)
	return func(c byte) layout.Key {
		k, ok := table.Lookup(c)
		require.Truef(t, ok, "no key for %q", c)
		return k
	}
}

func TestClassifyBigram(t *testing.T) {
	key := keysFor(t, qwerty)
	cases := []struct {
		name   string
		a, b   byte
		want   model.Category
		cost   int64
		weight int64
	}{
		{"pinky sfb two rows", 'q', 'z', model.SFB, 5 * 66 * 2, 5 * 66 * 2},
		{"index sfb two rows", 'r', 'v', model.SFB, 5 * 18 * 2, 5 * 18 * 2},
		{"index sfb into lateral", 'f', 't', model.SFB, 5 * 18 * 1, 5 * 18 * 1},
		{"index sfb lateral same row", 'f', 'g', model.SFB, 5 * 18 * 1, 5 * 18 * 1},
		{"lateral to index diagonal", 'g', 'v', model.SFB, 5 * 18 * 1, 5 * 18 * 1},
		{"repeat", 'a', 'a', model.SFR, 2 * 66, 2 * 66},
		{"lateral stretch", 't', 'd', model.LSB, 0, 30},
		{"lateral wins over scissor", 'g', 'e', model.LSB, 0, 30},
		{"half scissor", 'a', 'e', model.HSB, 0, 30},
		{"full scissor", 'q', 'c', model.FSB, 0, 90},
		{"same row outer inner", 'a', 'd', model.CategoryNone, 0, 0},
		{"inner inner", 's', 'c', model.CategoryNone, 0, 0},
		{"hand change", 'a', 'j', model.CategoryNone, 0, 0},
		{"thumb never stretches", ' ', 't', model.CategoryNone, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ClassifyBigram(key(tc.a), key(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Category)
			require.Equal(t, tc.cost, res.Cost)
			require.Equal(t, tc.weight, res.Weight)
			require.Equal(t, tc.want != model.CategoryNone, res.Bad())
		})
	}
}

func TestClassifyBigramAllSlotPairs(t *testing.T) {
	for i, a := range layout.Slots {
		for j, b := range layout.Slots {
			res, err := ClassifyBigram(a, b)
			require.NoError(t, err)
			if i == j {
				require.Equalf(t, model.SFR, res.Category, "slot %d repeated", i)
				continue
			}
			require.NotEqualf(t, model.SFR, res.Category, "slots %d,%d", i, j)
		}
	}
}

func TestClassifyBigramSentinel(t *testing.T) {
	for _, k := range layout.Slots {
		res, err := ClassifyBigram(layout.SentinelKey, k)
		require.NoError(t, err)
		require.Equal(t, model.CategoryNone, res.Category)
	}
}

func TestScissorDistanceOutOfRange(t *testing.T) {
	a := layout.Key{Hand: layout.Left, Finger: layout.Pinky, Row: 0}
	b := layout.Key{Hand: layout.Left, Finger: layout.Middle, Row: 3}
	_, err := ClassifyBigram(a, b)
	require.ErrorIs(t, err, ErrScissorDistance)

	var geo *GeometryError
	require.ErrorAs(t, err, &geo)
	require.Equal(t, uint8(3), geo.Row2)
}

func TestClassifySkipgram(t *testing.T) {
	key := keysFor(t, qwerty)
	none := layout.SentinelKey

	res, err := ClassifySkipgram(key('q'), key('z'), none)
	require.NoError(t, err)
	require.Equal(t, model.SFS, res.Skip)
	require.Equal(t, int64(66*2), res.Cost)
	require.False(t, res.EpicChecked)

	res, err = ClassifySkipgram(key('a'), key('a'), none)
	require.NoError(t, err)
	require.Equal(t, model.CategoryNone, res.Skip)
	require.Zero(t, res.Cost)

	res, err = ClassifySkipgram(key('q'), key('c'), none)
	require.NoError(t, err)
	require.Equal(t, model.FSS, res.Skip)
	require.True(t, res.Matches(model.FSS))
	require.False(t, res.Matches(model.CategoryNone))
}

func TestClassifySkipgramCategories(t *testing.T) {
	key := keysFor(t, qwerty)
	cases := []struct {
		name      string
		skip, cur byte
		want      model.Category
	}{
		{"lateral stretch", 't', 'd', model.LSS},
		{"lateral on the right hand", 'h', 'l', model.LSS},
		{"half scissor", 'a', 'e', model.HSS},
		{"half scissor reversed", 'e', 'a', model.HSS},
		{"full scissor", 'q', 'c', model.FSS},
		{"full scissor ring", 'q', 'x', model.FSS},
		{"same finger", 'e', 'd', model.SFS},
		{"hand change", 't', 'j', model.CategoryNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ClassifySkipgram(key(tc.skip), key(tc.cur), layout.SentinelKey)
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Skip)
			require.False(t, res.EpicChecked)
			require.Equal(t, tc.want != model.CategoryNone, res.Matches(tc.want))
		})
	}
}

func TestClassifySkipgramEpicBranch(t *testing.T) {
	key := keysFor(t, qwerty)

	res, err := ClassifySkipgram(key('s'), key('c'), key('d'))
	require.NoError(t, err)
	require.Equal(t, model.CategoryNone, res.Skip)
	require.True(t, res.EpicChecked)
	require.Equal(t, model.SFS, res.Epic)
	require.Zero(t, res.Cost)

	res, err = ClassifySkipgram(key('s'), key('d'), key('d'))
	require.NoError(t, err)
	require.True(t, res.EpicChecked)
	require.Equal(t, model.CategoryNone, res.Epic)

	res, err = ClassifySkipgram(key('s'), key('d'), key('k'))
	require.NoError(t, err)
	require.False(t, res.EpicChecked)
}

func TestClassifySkipgramEpicCategories(t *testing.T) {
	key := keysFor(t, qwerty)
	cases := []struct {
		name            string
		skip, cur, epic byte
		wantSkip        model.Category
		wantEpic        model.Category
	}{
		{"epic lateral", 'j', 'd', 't', model.CategoryNone, model.LSS},
		{"epic half scissor", 'j', 'e', 'a', model.CategoryNone, model.HSS},
		{"epic full scissor", 'j', 'c', 'q', model.CategoryNone, model.FSS},
		{"skip and epic both fire", 'e', 'd', 'q', model.SFS, model.HSS},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ClassifySkipgram(key(tc.skip), key(tc.cur), key(tc.epic))
			require.NoError(t, err)
			require.True(t, res.EpicChecked)
			require.Equal(t, tc.wantSkip, res.Skip)
			require.Equal(t, tc.wantEpic, res.Epic)
			require.True(t, res.Matches(tc.wantEpic))
		})
	}
}
