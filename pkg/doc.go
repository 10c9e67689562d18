// Package b64 implements heapless Base64 transcoding.
//
// The engine lives in the base64 package: an Encoder and a Decoder that
// borrow their input and hand out one output byte per pull, using only a
// fixed-size staging buffer. The cmd package wraps both in a command line
// tool.
//
// Related RFCs:
//  - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648#section-4 Base 64 Encoding
//  - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648#section-5 Base 64 Encoding with URL and Filename Safe Alphabet
package b64
