package layout

import (
	"errors"
	"fmt"
)

// Size is the number of slots in a layout.
const Size = 32

// Sentinel is the reserved character that stands for "no prior keystroke".
const Sentinel byte = 0

// SentinelKey is what the sentinel resolves to. Its hand never matches a
// real key, so no same-hand category can fire against it.
var SentinelKey = Key{Hand: NoHand}

var (
	// ErrLayoutLength is returned when a layout is not exactly Size single-byte characters.
	ErrLayoutLength = errors.New("layout must be exactly 32 single-byte characters")
	// ErrReservedChar is returned when a layout uses the sentinel character.
	ErrReservedChar = errors.New("layout uses a reserved character")
)

// Slots is the fixed slot geometry: three rows of ten (left pinky to
// right pinky, with the lateral index columns in the middle) followed by
// the left and right thumb keys.
var Slots = [Size]Key{
	// top row
	{Left, Pinky, 0, false}, {Left, Ring, 0, false}, {Left, Middle, 0, false}, {Left, Index, 0, false}, {Left, Index, 0, true},
	{Right, Index, 0, true}, {Right, Index, 0, false}, {Right, Middle, 0, false}, {Right, Ring, 0, false}, {Right, Pinky, 0, false},
	// home row
	{Left, Pinky, 1, false}, {Left, Ring, 1, false}, {Left, Middle, 1, false}, {Left, Index, 1, false}, {Left, Index, 1, true},
	{Right, Index, 1, true}, {Right, Index, 1, false}, {Right, Middle, 1, false}, {Right, Ring, 1, false}, {Right, Pinky, 1, false},
	// bottom row
	{Left, Pinky, 2, false}, {Left, Ring, 2, false}, {Left, Middle, 2, false}, {Left, Index, 2, false}, {Left, Index, 2, true},
	{Right, Index, 2, true}, {Right, Index, 2, false}, {Right, Middle, 2, false}, {Right, Ring, 2, false}, {Right, Pinky, 2, false},
	// thumbs
	{Left, Thumb, ThumbRow, false}, {Right, Thumb, ThumbRow, false},
}

// Table maps characters to keys for one layout.
type Table struct {
	letters [Size]byte
	keys    [256]Key
	mapped  [256]bool
}

// Build constructs the lookup table for a 32-character layout. A character
// that appears twice keeps the key of its later slot.
func Build(letters string) (*Table, error) {
	if len(letters) != Size {
		return nil, fmt.Errorf("%w: got %d bytes", ErrLayoutLength, len(letters))
	}
	t := &Table{}
	for i := 0; i < Size; i++ {
		c := letters[i]
		if c == Sentinel {
			return nil, fmt.Errorf("%w: slot %d", ErrReservedChar, i)
		}
		if c >= 0x80 {
			return nil, fmt.Errorf("%w: slot %d holds non-ASCII byte %#x", ErrLayoutLength, i, c)
		}
		t.letters[i] = c
		t.keys[c] = Slots[i]
		t.mapped[c] = true
	}
	return t, nil
}

// Letters returns the layout characters in slot order.
func (t *Table) Letters() [Size]byte {
	return t.letters
}

// Lookup returns the key for c and whether the layout maps it.
func (t *Table) Lookup(c byte) (Key, bool) {
	if !t.mapped[c] {
		return Key{}, false
	}
	return t.keys[c], true
}

// Resolve is Lookup with the sentinel resolving to SentinelKey.
func (t *Table) Resolve(c byte) (Key, bool) {
	if c == Sentinel {
		return SentinelKey, true
	}
	return t.Lookup(c)
}

// Has reports whether the layout maps c.
func (t *Table) Has(c byte) bool {
	return t.mapped[c]
}

// Len returns the number of distinct characters mapped.
func (t *Table) Len() int {
	n := 0
	for _, ok := range t.mapped {
		if ok {
			n++
		}
	}
	return n
}
