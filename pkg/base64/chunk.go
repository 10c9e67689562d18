package base64

const (
	encodeChunkSize = 3
	decodeChunkSize = 4
)

// encodeChunk turns the first n (1 to 3) bytes of src into four output
// characters. Bytes past n are ignored.
func encodeChunk(src [encodeChunkSize]byte, n int) [decodeChunkSize]byte {
	var acc uint32
	for i := 0; i < n && i < encodeChunkSize; i++ {
		acc |= uint32(src[i]) << (16 - 8*i)
	}

	var out [decodeChunkSize]byte
	for i, shift := range [decodeChunkSize]uint{18, 12, 6, 0} {
		out[i] = encodeSymbol(byte(acc >> shift))
	}

	// Groups past the input carry no real bits.
	if n <= 1 {
		out[2] = Padding
	}
	if n <= 2 {
		out[3] = Padding
	}
	return out
}

// decodeChunk reconstructs up to three bytes from the first n characters
// of src. It returns the bytes, how many of them are valid, or an error
// wrapping ErrInvalidInput.
func decodeChunk(src [decodeChunkSize]byte, n int) ([encodeChunkSize]byte, int, error) {
	var (
		out  [encodeChunkSize]byte
		syms [decodeChunkSize]symbol
	)

	// Missing characters stay symbolInvalid.
	for i := 0; i < n && i < decodeChunkSize; i++ {
		syms[i] = classify(src[i])
	}

	for i, s := range syms {
		if s.kind == symbolInvalid {
			if i >= n {
				return out, 0, ErrTruncatedChunk
			}
			return out, 0, ErrInvalidCharacter
		}
	}

	if syms[0].kind == symbolPadding || syms[1].kind == symbolPadding {
		return out, 0, ErrMisplacedPadding
	}
	if syms[2].kind == symbolPadding && syms[3].kind != symbolPadding {
		return out, 0, ErrMisplacedPadding
	}

	out[0] = syms[0].value<<2 | syms[1].value>>4
	size := 1
	if syms[2].kind == symbolValue {
		out[1] = syms[1].value<<4 | syms[2].value>>2
		size = 2
	}
	if syms[3].kind == symbolValue {
		out[2] = syms[2].value<<6 | syms[3].value
		size = 3
	}
	return out, size, nil
}
