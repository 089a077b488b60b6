// Package base32 implements utilities for encoding and decoding text using
// I2P's base32 alphabet, the RFC 3548 alphabet lowercased. I2P uses it for
// the .b32.i2p hostname form, which wants case-insensitive DNS-safe text
// rather than the denser base64.
//
// The scheme is the standard library's; only the alphabet differs, so
// malformed input surfaces encoding/base32 errors unchanged.
package base32

import (
	b32 "encoding/base32"
	"io"
)

// I2PEncodeAlphabet is the base32 encoding used throughout I2P.
const I2PEncodeAlphabet = "abcdefghijklmnopqrstuvwxyz234567"

// I2PEncoding is the standard base32 encoding used through I2P.
var I2PEncoding *b32.Encoding = b32.NewEncoding(I2PEncodeAlphabet)

// I2PEncodingUnpadded is I2PEncoding without trailing pad characters, the
// form .b32.i2p hostnames are written in.
var I2PEncodingUnpadded *b32.Encoding = I2PEncoding.WithPadding(b32.NoPadding)

// EncodeToString returns the I2P base32 encoding of data.
func EncodeToString(data []byte) string {
	return I2PEncoding.EncodeToString(data)
}

// DecodeString returns the bytes represented by the I2P base32 string str.
func DecodeString(str string) ([]byte, error) {
	return I2PEncoding.DecodeString(str)
}

// NewEncoder returns a stream encoder writing I2P base32 text to w. Callers
// must Close it to flush the final group.
func NewEncoder(w io.Writer) io.WriteCloser {
	return b32.NewEncoder(I2PEncoding, w)
}

// NewDecoder returns a stream decoder reading I2P base32 text from r.
func NewDecoder(r io.Reader) io.Reader {
	return b32.NewDecoder(I2PEncoding, r)
}

// NewUnpaddedEncoder is NewEncoder over the unpadded hostname form.
func NewUnpaddedEncoder(w io.Writer) io.WriteCloser {
	return b32.NewEncoder(I2PEncodingUnpadded, w)
}

// NewUnpaddedDecoder is NewDecoder over the unpadded hostname form.
func NewUnpaddedDecoder(r io.Reader) io.Reader {
	return b32.NewDecoder(I2PEncodingUnpadded, r)
}
