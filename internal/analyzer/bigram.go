package analyzer

import (
	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

const (
	sfbCostFactor = 5
	sfrCostFactor = 2
	lsbWeight     = 30
	hsbWeight     = 30
	fsbWeight     = 90
)

// BigramResult is the outcome of classifying one adjacent pair.
type BigramResult struct {
	Category model.Category
	// Cost is added to the finger travel accumulator.
	Cost int64
	// Weight is the badness recorded in the bad-bigram table.
	Weight int64
}

// Bad reports whether the pair fell into any category.
func (r BigramResult) Bad() bool {
	return r.Category != model.CategoryNone
}

// ClassifyBigram categorizes an adjacent pair of keys. At most one category
// applies.
func ClassifyBigram(a, b layout.Key) (BigramResult, error) {
	kind, err := classifyPair(a, b)
	if err != nil {
		return BigramResult{}, err
	}
	switch kind {
	case pairSameFinger:
		cost := sfbCostFactor * FingerWeight(a.Finger) * travelDistance(a, b)
		return BigramResult{Category: model.SFB, Cost: cost, Weight: cost}, nil
	case pairRepeat:
		cost := sfrCostFactor * FingerWeight(a.Finger)
		return BigramResult{Category: model.SFR, Cost: cost, Weight: cost}, nil
	case pairLateral:
		return BigramResult{Category: model.LSB, Weight: lsbWeight}, nil
	case pairHalfScissor:
		return BigramResult{Category: model.HSB, Weight: hsbWeight}, nil
	case pairFullScissor:
		return BigramResult{Category: model.FSB, Weight: fsbWeight}, nil
	}
	return BigramResult{}, nil
}
