package types

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrUnsupportedCurve is returned when a curve name is not present in
	// the registry.
	ErrUnsupportedCurve = ErrorKind("ErrUnsupportedCurve")

	// ErrInvalidScalar is returned when a scalar is zero or not less than
	// the group order where a value in [1, n-1] is required.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidPoint is returned when point decoding or decompression
	// fails, or when a point is not on the curve.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrPointAtInfinity is returned when affine coordinates are requested
	// for the identity element.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrOutOfBounds is returned when a signature component or a
	// reconstructed coordinate is outside of its valid range.
	ErrOutOfBounds = ErrorKind("ErrOutOfBounds")

	// ErrDivisionByZero is returned when dividing by zero or inverting a
	// value that shares a factor with the modulus.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrEncodingTooShort is returned when a value does not fit in the
	// requested fixed width.
	ErrEncodingTooShort = ErrorKind("ErrEncodingTooShort")

	// ErrUnderflow is returned when a subtraction would produce a negative
	// value.
	ErrUnderflow = ErrorKind("ErrUnderflow")

	// ErrInvalidNonce is returned when the signing nonce yields r == 0 or
	// s == 0.  Signing must be retried with fresh entropy.
	ErrInvalidNonce = ErrorKind("ErrInvalidNonce")

	// ErrRecoveryIDTooLarge is returned when the recovery id does not fit
	// in the requested recovery byte encoding.
	ErrRecoveryIDTooLarge = ErrorKind("ErrRecoveryIDTooLarge")

	// ErrMalformedSignature is returned when a signature has the wrong
	// length, an invalid recovery byte or an invalid DER structure.
	ErrMalformedSignature = ErrorKind("ErrMalformedSignature")

	// ErrEntropy is returned when the random source fails.
	ErrEntropy = ErrorKind("ErrEntropy")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve arithmetic or signatures.  It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error given a set of arguments.
func NewError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
