package ecc

import (
	"bytes"
	"fmt"

	"github.com/athanorlabs/go-ecc/scalar"
)

// Signature is a parsed ECDSA signature.
type Signature struct {
	R, S *scalar.Int
	// Recovery is nil for plain r || s signatures.
	Recovery *RecoveryID
	// Compressed is only meaningful when Recovery is set.
	Compressed bool
}

// Free wipes r and s.
func (sig *Signature) Free() {
	sig.R.Free()
	sig.S.Free()
}

// EncodeSignature serializes sig as r || s, preceded by the recovery byte
// when sig.Recovery is set.
func (c *Curve) EncodeSignature(sig *Signature) ([]byte, error) {
	rb, err := sig.R.BytesWidth(c.length)
	if err != nil {
		return nil, err
	}
	sb, err := sig.S.BytesWidth(c.length)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 1+2*c.length)
	if sig.Recovery != nil {
		out = append(out, sig.Recovery.Prefix(sig.Compressed))
	}
	out = append(out, rb...)
	return append(out, sb...), nil
}

// ParseSignature decodes a 2L byte r || s signature or a 1+2L byte
// recoverable signature. It does not range check r and s.
func (c *Curve) ParseSignature(in []byte) (*Signature, error) {
	reader := bytes.NewBuffer(in)
	sig := new(Signature)

	switch len(in) {
	case 2 * c.length:
	case 1 + 2*c.length:
		id, compressed, err := ParseRecoveryByte(reader.Next(1)[0])
		if err != nil {
			return nil, err
		}
		sig.Recovery = &id
		sig.Compressed = compressed
	default:
		return nil, newError(ErrMalformedSignature,
			fmt.Sprintf("signature must be %d or %d bytes, got %d", 2*c.length, 1+2*c.length, len(in)))
	}

	sig.R = scalar.FromBytes(reader.Next(c.length))
	sig.S = scalar.FromBytes(reader.Next(c.length))
	return sig, nil
}

// checkRS requires r and s in [1, n-1].
func (c *Curve) checkRS(sig *Signature) error {
	n := c.Order()
	if sig.R.IsZero() || sig.R.CmpView(n) >= 0 {
		return newError(ErrOutOfBounds, "r is not in [1, n-1]")
	}
	if sig.S.IsZero() || sig.S.CmpView(n) >= 0 {
		return newError(ErrOutOfBounds, "s is not in [1, n-1]")
	}
	return nil
}

// NormalizeS rewrites a signature with s > n/2 to use n - s. For recoverable
// signatures the parity of the recovery id is flipped so that the same
// public key is still recovered.
func (c *Curve) NormalizeS(in []byte) ([]byte, error) {
	sig, err := c.ParseSignature(in)
	if err != nil {
		return nil, err
	}
	defer sig.Free()
	if err := c.checkRS(sig); err != nil {
		return nil, err
	}

	half, err := c.Order().Clone().Div(scalar.FromUint64(2))
	if err != nil {
		return nil, err
	}
	defer half.Free()
	if sig.S.Cmp(half) <= 0 {
		return append([]byte(nil), in...), nil
	}

	neg, err := sig.S.NegMod(c.Order())
	if err != nil {
		return nil, err
	}
	sig.S.Free()
	sig.S = neg
	if sig.Recovery != nil {
		sig.Recovery.Odd = !sig.Recovery.Odd
	}
	return c.EncodeSignature(sig)
}
