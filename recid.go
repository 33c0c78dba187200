package ecc

import "fmt"

const (
	recoveryOffset           = 27
	recoveryOffsetCompressed = 31
)

// RecoveryID identifies which of the candidate points R a recoverable
// signature was made with.
type RecoveryID struct {
	// Odd is the parity of R.y.
	Odd bool
	// Overflow is set when R.x was not less than n, so that r = R.x - n.
	Overflow bool
}

// Code returns the two-bit recovery id parity + 2*overflow.
func (id RecoveryID) Code() byte {
	var code byte
	if id.Odd {
		code |= 1
	}
	if id.Overflow {
		code |= 2
	}
	return code
}

// Prefix returns the recovery byte: 27+code, or 31+code when the signature
// is paired with a compressed public key. Only codes 0 to 3 exist, so the
// compressed range is 31 to 34 and never overlaps the uncompressed one.
// Sign rejects a candidate R with R.x >= 2n in both encodings rather than
// emitting 31+code for a larger code.
func (id RecoveryID) Prefix(compressed bool) byte {
	if compressed {
		return recoveryOffsetCompressed + id.Code()
	}
	return recoveryOffset + id.Code()
}

// ParseRecoveryByte decodes a recovery byte in [27, 34]: 27 to 30 for an
// uncompressed key and 31 to 34 for a compressed one. Bytes past 34 are
// malformed even though 31+code could name a larger code.
func ParseRecoveryByte(b byte) (id RecoveryID, compressed bool, err error) {
	var code byte
	switch {
	case b >= recoveryOffsetCompressed && b < recoveryOffsetCompressed+4:
		code, compressed = b-recoveryOffsetCompressed, true
	case b >= recoveryOffset && b < recoveryOffset+4:
		code = b - recoveryOffset
	default:
		return RecoveryID{}, false, newError(ErrMalformedSignature,
			fmt.Sprintf("recovery byte %d is outside [27, 34]", b))
	}
	return RecoveryID{Odd: code&1 == 1, Overflow: code&2 == 2}, compressed, nil
}
