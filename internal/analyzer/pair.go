package analyzer

import (
	"math"

	"github.com/verte-zerg/layoutstat/internal/layout"
)

// fingerWeights is the relative cost of moving each finger.
var fingerWeights = [layout.FingerCount]int64{
	layout.Pinky:  66,
	layout.Ring:   28,
	layout.Middle: 21,
	layout.Index:  18,
	layout.Thumb:  50,
}

// FingerWeight returns the travel weight of a finger.
func FingerWeight(f layout.Finger) int64 {
	return fingerWeights[f]
}

const (
	halfScissor = 1
	fullScissor = 2
)

type pairKind uint8

const (
	pairNone pairKind = iota
	pairSameFinger
	pairRepeat
	pairLateral
	pairHalfScissor
	pairFullScissor
)

// classifyPair applies the bigram priority order: same finger, repeat,
// lateral stretch, half scissor, full scissor.
func classifyPair(a, b layout.Key) (pairKind, error) {
	if sameFinger(a, b) {
		return pairSameFinger, nil
	}
	if a == b {
		return pairRepeat, nil
	}
	if lateralStretch(a, b) {
		return pairLateral, nil
	}
	severity, err := scissor(a, b)
	if err != nil {
		return pairNone, err
	}
	switch severity {
	case halfScissor:
		return pairHalfScissor, nil
	case fullScissor:
		return pairFullScissor, nil
	}
	return pairNone, nil
}

func sameFinger(a, b layout.Key) bool {
	return a.Finger == b.Finger && a.Hand == b.Hand && a != b
}

func lateralStretch(a, b layout.Key) bool {
	return (a.Lateral || b.Lateral) &&
		a.Hand == b.Hand &&
		!a.IsThumb() && !b.IsThumb()
}

func outerFinger(f layout.Finger) bool {
	return f == layout.Pinky || f == layout.Index
}

func innerFinger(f layout.Finger) bool {
	return f == layout.Middle || f == layout.Ring
}

// scissor returns the row distance of a same-hand outer/inner finger pair,
// or zero when the pair is not a scissor.
func scissor(a, b layout.Key) (int, error) {
	if a.Hand != b.Hand || a.Finger == b.Finger {
		return 0, nil
	}
	if !(outerFinger(a.Finger) && innerFinger(b.Finger)) && !(outerFinger(b.Finger) && innerFinger(a.Finger)) {
		return 0, nil
	}
	d := rowDistance(a, b)
	if d > fullScissor {
		return 0, &GeometryError{Row1: a.Row, Row2: b.Row}
	}
	return d, nil
}

func rowDistance(a, b layout.Key) int {
	d := int(a.Row) - int(b.Row)
	if d < 0 {
		d = -d
	}
	return d
}

// travelDistance approximates how far a finger moves between two keys.
// A lateral/non-lateral change adds one column of diagonal movement.
func travelDistance(a, b layout.Key) int64 {
	dy := rowDistance(a, b)
	if a.Lateral == b.Lateral {
		return int64(max(dy, 1))
	}
	return int64(math.Round(math.Sqrt(float64(dy*dy + 1))))
}
