// Package base64 implements the base64 variant used throughout I2P:
// RFC 4648 with "+" replaced by "-" and "/" replaced by "~".
//
// The package exposes the codec twice. In-memory transforms live on an
// Encoding (Encode, EncodeToString, Decode, DecodeString), and streaming
// wrappers (NewEncoder, NewDecoder) process data one 3-byte/4-symbol group
// at a time with fixed internal buffering, so neither direction ever needs
// the whole input in memory.
//
// Malformed input is classified by three sentinel errors. ErrInvalidSymbol
// reports a character that is neither an alphabet symbol nor padding,
// ErrInvalidLength reports a character count no complete grouping can
// produce, and ErrInvalidPadding reports padding in a position or count the
// grouping rules forbid. Returned errors wrap the sentinel and carry the
// offset of the offending character; match them with errors.Is. Failures of
// an underlying reader or writer are wrapped and passed through unchanged,
// never converted to a sentinel.
//
// Example usage:
//
//	text := base64.EncodeToString(raw)
//	raw, err := base64.DecodeString(text)
//	if errors.Is(err, base64.ErrInvalidSymbol) {
//	    // input contained a character outside the I2P alphabet
//	}
//
// Decoding is strict by default: embedded whitespace is rejected like any
// other foreign character. An Encoding built with IgnoreWhitespace(true)
// skips ASCII space, TAB, CR and LF instead. Padding is emitted and required
// unless the Encoding was built with WithPadding(NoPadding).
package base64
