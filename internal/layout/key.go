// Package layout maps layout characters to physical keys.
package layout

// Finger identifies the finger that presses a key.
type Finger uint8

// Fingers ordered from the outside of the hand toward the thumb.
const (
	Pinky Finger = iota
	Ring
	Middle
	Index
	Thumb
)

// FingerCount is the number of distinct fingers per hand.
const FingerCount = 5

var fingerNames = [FingerCount]string{"pinky", "ring", "middle", "index", "thumb"}

func (f Finger) String() string {
	if int(f) < len(fingerNames) {
		return fingerNames[f]
	}
	return "unknown"
}

// Hand identifies the side of the keyboard.
type Hand uint8

const (
	Left Hand = iota
	Right
	// NoHand is only carried by the sentinel key.
	NoHand
)

func (h Hand) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ThumbRow is the row reserved for thumb keys.
const ThumbRow = 3

// Key describes a physical key. Keys compare structurally.
type Key struct {
	Hand    Hand
	Finger  Finger
	Row     uint8
	Lateral bool
}

// IsThumb reports whether the key is pressed by a thumb.
func (k Key) IsThumb() bool {
	return k.Finger == Thumb
}

// IsSentinel reports whether the key stands for "no prior keystroke".
func (k Key) IsSentinel() bool {
	return k.Hand == NoHand
}
