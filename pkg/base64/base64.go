package base64

import (
	"golang.org/x/exp/slices"
)

// EncodedLen returns the length of the Base64 encoding of n input bytes.
func EncodedLen(n int) int {
	return (n + encodeChunkSize - 1) / encodeChunkSize * decodeChunkSize
}

// DecodedLen returns the maximum number of bytes n characters of Base64
// input decode to. Padding may make the actual result up to two bytes
// shorter.
func DecodedLen(n int) int {
	return n / decodeChunkSize * encodeChunkSize
}

// AppendEncode appends the Base64 encoding of src to dst and returns the
// extended slice.
func AppendEncode(dst, src []byte) []byte {
	dst = slices.Grow(dst, EncodedLen(len(src)))

	enc := NewEncoder(src)
	for c := range enc.All() {
		dst = append(dst, c)
	}
	return dst
}

// AppendDecode appends the bytes decoded from src to dst and returns the
// extended slice. If src is malformed, the returned slice holds the bytes
// of every chunk preceding the failing one, and the error wraps
// ErrInvalidInput.
func AppendDecode(dst, src []byte) ([]byte, error) {
	dst = slices.Grow(dst, DecodedLen(len(src)))

	dec := NewDecoder(src)
	for b := range dec.All() {
		dst = append(dst, b)
	}
	return dst, dec.Err()
}

// Encode returns the standard Base64 encoding of the given input, with
// padding.
//
// Empty input encodes to an empty string.
func Encode(input []byte) string {
	if len(input) == 0 {
		return ""
	}
	return string(AppendEncode(nil, input))
}

// Decode returns the bytes represented by the given Base64 input. Both the
// standard and the URL safe alphabet are accepted. The input length must be
// a multiple of four.
//
// Unlike AppendDecode, no partial result is returned on error.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	result, err := AppendDecode(nil, []byte(input))
	if err != nil {
		return nil, err
	}
	return result, nil
}
