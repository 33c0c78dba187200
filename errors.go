package ecc

import "github.com/athanorlabs/go-ecc/types"

// Error kinds returned by the engine. Every error it returns matches exactly
// one of them with errors.Is.
const (
	ErrUnsupportedCurve   = types.ErrUnsupportedCurve
	ErrInvalidScalar      = types.ErrInvalidScalar
	ErrInvalidPoint       = types.ErrInvalidPoint
	ErrPointAtInfinity    = types.ErrPointAtInfinity
	ErrOutOfBounds        = types.ErrOutOfBounds
	ErrDivisionByZero     = types.ErrDivisionByZero
	ErrEncodingTooShort   = types.ErrEncodingTooShort
	ErrUnderflow          = types.ErrUnderflow
	ErrInvalidNonce       = types.ErrInvalidNonce
	ErrRecoveryIDTooLarge = types.ErrRecoveryIDTooLarge
	ErrMalformedSignature = types.ErrMalformedSignature
	ErrEntropy            = types.ErrEntropy
)

func newError(kind types.ErrorKind, desc string) error {
	return types.NewError(kind, desc)
}
