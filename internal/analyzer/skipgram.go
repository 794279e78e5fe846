package analyzer

import (
	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

// SkipgramResult is the outcome of classifying the distance-two pair and
// the pair formed with the last opposite-hand anchor.
type SkipgramResult struct {
	Skip model.Category
	// Cost is added to the finger travel accumulator.
	Cost int64
	// EpicChecked is set when the anchor shares the current hand.
	EpicChecked bool
	Epic        model.Category
}

// Matches reports whether either branch produced category c.
func (r SkipgramResult) Matches(c model.Category) bool {
	if c == model.CategoryNone {
		return false
	}
	return r.Skip == c || r.Epic == c
}

// ClassifySkipgram categorizes (skip, cur) and, when epic is on the same
// hand as cur, (epic, cur). Identical keys never count in the epic branch.
func ClassifySkipgram(skip, cur, epic layout.Key) (SkipgramResult, error) {
	var res SkipgramResult
	kind, err := classifyPair(skip, cur)
	if err != nil {
		return SkipgramResult{}, err
	}
	res.Skip = skipCategory(kind)
	if kind == pairSameFinger {
		res.Cost = FingerWeight(skip.Finger) * travelDistance(skip, cur)
	}

	if epic.Hand == cur.Hand {
		res.EpicChecked = true
		if epic != cur {
			kind, err := classifyPair(epic, cur)
			if err != nil {
				return SkipgramResult{}, err
			}
			res.Epic = skipCategory(kind)
		}
	}
	return res, nil
}

func skipCategory(kind pairKind) model.Category {
	switch kind {
	case pairSameFinger:
		return model.SFS
	case pairLateral:
		return model.LSS
	case pairHalfScissor:
		return model.HSS
	case pairFullScissor:
		return model.FSS
	}
	return model.CategoryNone
}
