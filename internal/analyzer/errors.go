package analyzer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmappedChar is returned when the corpus holds a character the layout cannot type.
	ErrUnmappedChar = errors.New("unmapped character")
	// ErrScissorDistance is returned when a scissor pair spans more rows than the severity tiers allow.
	ErrScissorDistance = errors.New("scissor row distance out of range")
)

// UnmappedCharError reports the offending character and its byte offset in the corpus.
type UnmappedCharError struct {
	Char   byte
	Offset int
}

func (e *UnmappedCharError) Error() string {
	return fmt.Sprintf("unmapped character %q at offset %d", e.Char, e.Offset)
}

// Is makes errors.Is(err, ErrUnmappedChar) match.
func (e *UnmappedCharError) Is(target error) bool {
	return target == ErrUnmappedChar
}

// GeometryError reports a pair of rows that cannot be scored as a scissor.
type GeometryError struct {
	Row1 uint8
	Row2 uint8
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("scissor row distance out of range: rows %d and %d", e.Row1, e.Row2)
}

// Is makes errors.Is(err, ErrScissorDistance) match.
func (e *GeometryError) Is(target error) bool {
	return target == ErrScissorDistance
}
