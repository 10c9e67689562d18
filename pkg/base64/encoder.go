package base64

import (
	"io"
	"iter"
)

// Encoder produces the Base64 encoding of a borrowed input slice, one
// character at a time. The input must not be modified while the Encoder is
// in use. An Encoder cannot be rewound; create a new one to start over.
//
// # Example
//
//	enc := base64.NewEncoder([]byte("foobar"))
//	for c := range enc.All() {
//		fmt.Printf("%c", c)
//	}
type Encoder struct {
	input []byte
	out   staging
}

// NewEncoder returns an Encoder reading from input.
func NewEncoder(input []byte) *Encoder {
	return &Encoder{input: input}
}

// ReadByte returns the next output character, or io.EOF once the whole
// input has been encoded.
func (e *Encoder) ReadByte() (byte, error) {
	if c, ok := e.out.next(); ok {
		return c, nil
	}
	if len(e.input) == 0 {
		return 0, io.EOF
	}

	var chunk [encodeChunkSize]byte
	n := copy(chunk[:], e.input)
	e.input = e.input[n:]

	quad := encodeChunk(chunk, n)
	e.out.fill(quad[:])

	c, _ := e.out.next()
	return c, nil
}

// Read fills p with the next output characters. It implements io.Reader.
func (e *Encoder) Read(p []byte) (int, error) {
	for i := range p {
		c, err := e.ReadByte()
		if err != nil {
			if i > 0 {
				return i, nil
			}
			return 0, err
		}
		p[i] = c
	}
	return len(p), nil
}

// All returns an iterator over the remaining output characters.
func (e *Encoder) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			c, err := e.ReadByte()
			if err != nil || !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of characters not yet delivered.
func (e *Encoder) Len() int {
	return e.out.remaining() + EncodedLen(len(e.input))
}
