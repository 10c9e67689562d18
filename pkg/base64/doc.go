// Package base64 provides a streaming Base64 encoder and decoder that work
// without heap allocation. Both directions borrow an input slice and hand out
// their result one byte at a time from a small fixed-size staging buffer, so
// the caller decides where (and whether) the output is stored.
//
// The encoder always emits the standard alphabet with '=' padding, as
// defined in RFC 4648 Section 4. The decoder accepts the standard alphabet
// and the URL and filename safe alphabet (RFC 4648 Section 5) interchangeably,
// even within the same input:
//   - '+' and '-' both decode to 62
//   - '/' and '_' both decode to 63
//
// Decoding is strict otherwise: the input length must be a multiple of four,
// padding may only end a chunk, and whitespace is never skipped. The first
// malformed chunk stops the decoder for good; the bytes delivered before it
// remain valid.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
