package base64

import (
	"github.com/samber/oops"
)

// I2PEncodeAlphabet is the base64 alphabet used throughout I2P.
// RFC 4648 with "+" replaced by "-" and "/" replaced by "~".
const I2PEncodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-~"

// invalidIndex marks inverse table slots for characters outside the alphabet.
const invalidIndex = 0xFF

// Alphabet maps 6-bit values to symbols and back. It is immutable after
// construction and safe to share between any number of concurrent encoders
// and decoders.
type Alphabet struct {
	symbols [64]byte
	inverse [256]byte
}

// I2PAlphabet is the shared alphabet table for I2PEncodeAlphabet.
var I2PAlphabet = mustAlphabet(I2PEncodeAlphabet)

// NewAlphabet builds an Alphabet from a string of 64 distinct ASCII symbols.
// CR, LF and the padding character '=' are rejected as symbols so that text
// framing and padding stay unambiguous.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) != 64 {
		return nil, oops.Errorf("alphabet holds %d symbols, need 64: %w", len(symbols), ErrInvalidAlphabet)
	}
	a := &Alphabet{}
	for i := range a.inverse {
		a.inverse[i] = invalidIndex
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		switch {
		case c >= 0x80:
			return nil, oops.Errorf("symbol %#x at index %d is not ASCII: %w", c, i, ErrInvalidAlphabet)
		case c == '\r' || c == '\n':
			return nil, oops.Errorf("symbol at index %d is a line break: %w", i, ErrInvalidAlphabet)
		case c == '=':
			return nil, oops.Errorf("symbol at index %d collides with padding: %w", i, ErrInvalidAlphabet)
		case a.inverse[c] != invalidIndex:
			return nil, oops.Errorf("duplicate symbol %q at index %d: %w", c, i, ErrInvalidAlphabet)
		}
		a.symbols[i] = c
		a.inverse[c] = byte(i)
	}
	return a, nil
}

func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic("base64: " + err.Error())
	}
	return a
}

// Symbol returns the symbol for a 6-bit value. Only the low six bits of v
// are used.
func (a *Alphabet) Symbol(v int) byte {
	return a.symbols[v&0x3F]
}

// Index returns the 6-bit value of c and whether c is an alphabet symbol.
// Padding and whitespace are not symbols.
func (a *Alphabet) Index(c byte) (int, bool) {
	v := a.inverse[c]
	return int(v), v != invalidIndex
}

// String returns the 64 symbols in index order.
func (a *Alphabet) String() string {
	return string(a.symbols[:])
}
