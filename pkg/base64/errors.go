package base64

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the single kind every decode error reports. Use
	// errors.Is to check for it; the more specific errors below wrap it.
	ErrInvalidInput = errors.New("invalid base64 input")

	// ErrInvalidCharacter means a byte outside both alphabets and not '='.
	ErrInvalidCharacter = fmt.Errorf("%w: invalid character", ErrInvalidInput)

	// ErrMisplacedPadding means '=' in the first two positions of a chunk,
	// or in the third followed by a real character.
	ErrMisplacedPadding = fmt.Errorf("%w: misplaced padding", ErrInvalidInput)

	// ErrTruncatedChunk means the input ended less than four characters
	// into a chunk.
	ErrTruncatedChunk = fmt.Errorf("%w: truncated chunk", ErrInvalidInput)
)

// ErrCorruptChunk is returned by a Decoder for the first chunk it could
// not decode. Offset is the position of that chunk in the input.
type ErrCorruptChunk struct {
	Offset int
	Inner  error
}

func (e *ErrCorruptChunk) Error() string {
	return fmt.Sprintf("base64: corrupt chunk at offset %d: %v", e.Offset, e.Inner)
}

func (e *ErrCorruptChunk) Unwrap() error {
	return e.Inner
}

// NewCorruptChunkError returns an ErrCorruptChunk for the chunk starting at offset.
func NewCorruptChunkError(offset int, inner error) *ErrCorruptChunk {
	return &ErrCorruptChunk{Offset: offset, Inner: inner}
}
