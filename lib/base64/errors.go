package base64

import "errors"

// Error definitions. Sentinels are plain values so errors.Is matching stays
// an identity check; failure sites wrap them through oops.Errorf with the
// offset of the offending character.
var (
	ErrInvalidSymbol   = errors.New("invalid base64 symbol")
	ErrInvalidLength   = errors.New("invalid base64 length")
	ErrInvalidPadding  = errors.New("invalid base64 padding")
	ErrInvalidAlphabet = errors.New("invalid base64 alphabet")
)
