package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

func TestRollClassifier(t *testing.T) {
	key := keysFor(t, qwerty)
	cases := []struct {
		name    string
		trigram string
		rc      RollClassifier
		want    model.Category
	}{
		{"inward three roll", "asd", RollClassifier{}, model.InThreeRoll},
		{"outward three roll", "dsa", RollClassifier{}, model.OutThreeRoll},
		{"inward roll then switch", "asj", RollClassifier{}, model.InRoll},
		{"switch then outward roll", "jsa", RollClassifier{}, model.OutRoll},
		{"alternation", "ajs", RollClassifier{}, model.Alt},
		{"weak redirect", "sda", RollClassifier{}, model.WeakRed},
		{"redirect through index", "sfa", RollClassifier{}, model.Red},
		{"same finger run", "aqs", RollClassifier{}, model.CategoryNone},
		{"same finger pair before switch", "aqj", RollClassifier{}, model.CategoryNone},
		{"thumb roll excluded", "a j", RollClassifier{}, model.CategoryNone},
		{"thumb alternation excluded", "j k", RollClassifier{}, model.CategoryNone},
		{"thumb alternation included", "j k", RollClassifier{IncludeThumbAlt: true}, model.Alt},
		{"thumb roll included", "a j", RollClassifier{IncludeThumbRoll: true}, model.InRoll},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.rc.ClassifyTrigram(key(tc.trigram[0]), key(tc.trigram[1]), key(tc.trigram[2]))
			require.Equal(t, tc.want, res.Category)
		})
	}
}

func TestRollClassifierThumbFlag(t *testing.T) {
	key := keysFor(t, qwerty)
	rc := RollClassifier{}

	res := rc.ClassifyTrigram(key('a'), key('j'), key(' '))
	require.True(t, res.Thumb)

	res = rc.ClassifyTrigram(layout.SentinelKey, layout.SentinelKey, key(' '))
	require.True(t, res.Thumb)
	require.Equal(t, model.CategoryNone, res.Category)

	res = rc.ClassifyTrigram(layout.SentinelKey, key('a'), key('s'))
	require.False(t, res.Thumb)
	require.Equal(t, model.CategoryNone, res.Category)
}
