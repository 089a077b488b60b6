package base64

import (
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

const (
	// StdPadding is the default padding character.
	StdPadding rune = '='
	// NoPadding disables padding on encode and forbids it on decode.
	NoPadding rune = -1
)

// Encoding binds an Alphabet to a padding mode and a whitespace policy.
// Encodings are immutable; the With* methods return adjusted copies. An
// Encoding is safe for concurrent use, though each stream encoder or
// decoder built from it serves a single goroutine.
type Encoding struct {
	alpha   *Alphabet
	padChar rune
	skipWS  bool
}

// I2PEncoding is the standard padded, strict base64 encoding used through I2P.
var I2PEncoding = NewEncoding(I2PAlphabet)

// NewEncoding returns a padded, strict Encoding over alphabet.
func NewEncoding(alphabet *Alphabet) *Encoding {
	return &Encoding{alpha: alphabet, padChar: StdPadding}
}

// WithPadding returns an Encoding identical to enc with padding character
// pad, or with padding disabled when pad is NoPadding. It panics when pad
// is a line break, a non-ASCII rune, or a symbol of the alphabet.
func (enc Encoding) WithPadding(pad rune) *Encoding {
	if pad != NoPadding {
		switch {
		case pad == '\r' || pad == '\n' || pad < 0 || pad > 0x7F:
			panic("base64: invalid padding character")
		default:
			if _, ok := enc.alpha.Index(byte(pad)); ok {
				panic("base64: padding character is an alphabet symbol")
			}
		}
	}
	enc.padChar = pad
	return &enc
}

// IgnoreWhitespace returns an Encoding identical to enc that skips ASCII
// space, TAB, CR and LF in decoded input when ignore is true. Ignored
// characters do not count toward grouping or length.
func (enc Encoding) IgnoreWhitespace(ignore bool) *Encoding {
	enc.skipWS = ignore
	return &enc
}

// Alphabet returns the table enc encodes with.
func (enc *Encoding) Alphabet() *Alphabet {
	return enc.alpha
}

// Padded reports whether enc emits and requires padding.
func (enc *Encoding) Padded() bool {
	return enc.padChar != NoPadding
}

// EncodedLen returns the exact length in characters of the encoding of n
// source bytes.
func (enc *Encoding) EncodedLen(n int) int {
	if enc.padChar == NoPadding {
		return n/3*4 + (n%3*8+5)/6
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoding of n
// encoded characters.
func (enc *Encoding) DecodedLen(n int) int {
	if enc.padChar == NoPadding {
		return n * 6 / 8
	}
	return n / 4 * 3
}

// Encode writes the encoding of src into dst, which must be at least
// EncodedLen(len(src)) bytes. Three source bytes become four symbols, most
// significant bits first; a final group of one or two bytes is completed
// with padding unless padding is disabled. Encoding cannot fail.
func (enc *Encoding) Encode(dst, src []byte) {
	di := 0
	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[di+0] = enc.alpha.Symbol(int(v >> 18))
		dst[di+1] = enc.alpha.Symbol(int(v >> 12))
		dst[di+2] = enc.alpha.Symbol(int(v >> 6))
		dst[di+3] = enc.alpha.Symbol(int(v))
		src = src[3:]
		di += 4
	}
	switch len(src) {
	case 1:
		v := uint(src[0]) << 16
		dst[di+0] = enc.alpha.Symbol(int(v >> 18))
		dst[di+1] = enc.alpha.Symbol(int(v >> 12))
		if enc.padChar != NoPadding {
			dst[di+2] = byte(enc.padChar)
			dst[di+3] = byte(enc.padChar)
		}
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[di+0] = enc.alpha.Symbol(int(v >> 18))
		dst[di+1] = enc.alpha.Symbol(int(v >> 12))
		dst[di+2] = enc.alpha.Symbol(int(v >> 6))
		if enc.padChar != NoPadding {
			dst[di+3] = byte(enc.padChar)
		}
	}
}

// EncodeToString returns the encoding of src.
func (enc *Encoding) EncodeToString(src []byte) string {
	buf := make([]byte, enc.EncodedLen(len(src)))
	enc.Encode(buf, src)
	return string(buf)
}

// Decode decodes src into dst, which must be at least DecodedLen(len(src))
// bytes, and returns the number of bytes written. On error n counts the
// bytes decoded before the offending character, which are already in dst;
// nothing written is retracted. The error wraps ErrInvalidSymbol,
// ErrInvalidLength or ErrInvalidPadding and names the character offset.
func (enc *Encoding) Decode(dst, src []byte) (n int, err error) {
	st := decodeState{enc: enc}
	for i := 0; i < len(src); i++ {
		out, k, err := st.next(src[i])
		if err != nil {
			log.WithError(err).Error("base64 decode failed")
			return n, err
		}
		for j := 0; j < k; j++ {
			dst[n] = out[j]
			n++
		}
	}
	out, k, err := st.finish()
	if err != nil {
		log.WithError(err).Error("base64 decode failed")
		return n, err
	}
	for j := 0; j < k; j++ {
		dst[n] = out[j]
		n++
	}
	return n, nil
}

// DecodeString returns the bytes represented by the base64 string s.
func (enc *Encoding) DecodeString(s string) ([]byte, error) {
	log.WithField("length", len(s)).Debug("decoding base64 string")
	dst := make([]byte, enc.DecodedLen(len(s)))
	n, err := enc.Decode(dst, []byte(s))
	return dst[:n], err
}

// EncodeToString encodes data with I2PEncoding.
func EncodeToString(data []byte) string {
	return I2PEncoding.EncodeToString(data)
}

// DecodeString decodes str with I2PEncoding.
func DecodeString(str string) ([]byte, error) {
	return I2PEncoding.DecodeString(str)
}
