package analyzer

import (
	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

// TrigramClassifier categorizes three consecutive keys. The scanner applies
// the result; classifiers never touch the accumulator.
type TrigramClassifier interface {
	ClassifyTrigram(a, b, c layout.Key) TrigramResult
}

// TrigramResult is the outcome of classifying one triple.
type TrigramResult struct {
	// Category is one of the roll, alternation or redirect categories, or none.
	Category model.Category
	// Thumb is set when the newest key is a thumb key.
	Thumb bool
}

// RollClassifier is the default trigram classifier.
//
// Rolls move across distinct fingers of one hand, inward toward the thumb
// or outward toward the pinky. A three-key roll keeps one direction over
// the whole triple; a two-key roll is a same-hand pair next to a hand
// change. Alternation switches hands on every keystroke. A redirect
// reverses direction inside a one-hand triple and is weak when the index
// finger is not involved. Thumb keys only take part in alternations and
// rolls when the matching Include flag is set.
type RollClassifier struct {
	IncludeThumbAlt  bool
	IncludeThumbRoll bool
}

// ClassifyTrigram implements TrigramClassifier.
func (rc RollClassifier) ClassifyTrigram(a, b, c layout.Key) TrigramResult {
	res := TrigramResult{Thumb: c.IsThumb()}
	if a.IsSentinel() || b.IsSentinel() {
		return res
	}
	thumb := a.IsThumb() || b.IsThumb() || c.IsThumb()

	switch {
	case a.Hand != b.Hand && b.Hand != c.Hand:
		if thumb && !rc.IncludeThumbAlt {
			return res
		}
		res.Category = model.Alt
	case a.Hand == b.Hand && b.Hand == c.Hand:
		if thumb && !rc.IncludeThumbRoll {
			return res
		}
		res.Category = oneHand(a.Finger, b.Finger, c.Finger)
	case a.Hand == b.Hand:
		if (a.IsThumb() || b.IsThumb()) && !rc.IncludeThumbRoll {
			return res
		}
		res.Category = roll(a.Finger, b.Finger)
	default:
		if (b.IsThumb() || c.IsThumb()) && !rc.IncludeThumbRoll {
			return res
		}
		res.Category = roll(b.Finger, c.Finger)
	}
	return res
}

func roll(from, to layout.Finger) model.Category {
	switch {
	case from < to:
		return model.InRoll
	case from > to:
		return model.OutRoll
	}
	return model.CategoryNone
}

func oneHand(f1, f2, f3 layout.Finger) model.Category {
	if f1 == f2 || f2 == f3 {
		return model.CategoryNone
	}
	switch {
	case f1 < f2 && f2 < f3:
		return model.InThreeRoll
	case f1 > f2 && f2 > f3:
		return model.OutThreeRoll
	}
	if f1 == layout.Index || f2 == layout.Index || f3 == layout.Index {
		return model.Red
	}
	return model.WeakRed
}
