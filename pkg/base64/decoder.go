package base64

import (
	"io"
	"iter"
)

// State is the position of a Decoder in its lifecycle.
type State uint8

const (
	// Streaming means more input may still produce output.
	Streaming State = iota
	// Exhausted means all input was decoded without error.
	Exhausted
	// Failed means an invalid chunk was found. No more output follows.
	Failed
)

func (s State) String() string {
	switch s {
	case Streaming:
		return "streaming"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Decoder produces the bytes encoded by a borrowed Base64 input slice, one
// byte at a time. The input must not be modified while the Decoder is in use.
//
// Malformed input is reported by ReadByte as soon as the failing chunk is
// reached. Everything returned before that point is valid output of the
// preceding chunks. Callers that drain the Decoder through All must check
// Err afterwards.
type Decoder struct {
	input  []byte
	offset int
	out    staging
	state  State
	err    error
}

// NewDecoder returns a Decoder reading from input.
func NewDecoder(input []byte) *Decoder {
	return &Decoder{input: input}
}

// ReadByte returns the next decoded byte. At the end of valid input it
// returns io.EOF. On malformed input it returns an *ErrCorruptChunk, and
// keeps returning it on every later call.
func (d *Decoder) ReadByte() (byte, error) {
	if b, ok := d.out.next(); ok {
		return b, nil
	}

	switch d.state {
	case Failed:
		return 0, d.err
	case Exhausted:
		return 0, io.EOF
	}

	if len(d.input) == 0 {
		d.state = Exhausted
		return 0, io.EOF
	}

	var chunk [decodeChunkSize]byte
	n := copy(chunk[:], d.input)

	triple, size, err := decodeChunk(chunk, n)
	if err != nil {
		d.state = Failed
		d.err = NewCorruptChunkError(d.offset, err)
		return 0, d.err
	}

	d.input = d.input[n:]
	d.offset += n
	d.out.fill(triple[:size])

	b, _ := d.out.next()
	return b, nil
}

// Read fills p with the next decoded bytes. It implements io.Reader. When
// the input is malformed, the bytes preceding the failing chunk are
// returned first and the error on the following call.
func (d *Decoder) Read(p []byte) (int, error) {
	for i := range p {
		b, err := d.ReadByte()
		if err != nil {
			if i > 0 {
				return i, nil
			}
			return 0, err
		}
		p[i] = b
	}
	return len(p), nil
}

// All returns an iterator over the remaining decoded bytes. The iterator
// stops at the end of input or at the first malformed chunk; use Err to
// tell the two apart.
func (d *Decoder) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			b, err := d.ReadByte()
			if err != nil || !yield(b) {
				return
			}
		}
	}
}

// Err reports the status of the Decoder: nil as long as every chunk
// processed so far was valid, otherwise the first decode error.
func (d *Decoder) Err() error {
	return d.err
}

// State returns the current lifecycle state.
func (d *Decoder) State() State {
	return d.state
}
