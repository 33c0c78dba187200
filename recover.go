package ecc

import (
	"fmt"

	"github.com/athanorlabs/go-ecc/scalar"
)

// Recover returns the public key that produced a 1+2L byte recoverable
// signature over subject.
func (c *Curve) Recover(signature, subject []byte) (PublicKey, error) {
	pub, _, err := c.RecoverCompressed(signature, subject)
	return pub, err
}

// RecoverCompressed is Recover that also reports whether the recovery byte
// marks the signature as paired with a compressed public key.
func (c *Curve) RecoverCompressed(signature, subject []byte) (PublicKey, bool, error) {
	if len(signature) != 1+2*c.length {
		return PublicKey{}, false, newError(ErrMalformedSignature,
			fmt.Sprintf("recoverable signature must be %d bytes, got %d", 1+2*c.length, len(signature)))
	}
	sig, err := c.ParseSignature(signature)
	if err != nil {
		return PublicKey{}, false, err
	}
	defer sig.Free()

	pub, err := c.recover(sig, subject)
	if err != nil {
		return PublicKey{}, false, err
	}
	return pub, sig.Compressed, nil
}

func (c *Curve) recover(sig *Signature, subject []byte) (PublicKey, error) {
	if err := c.checkRS(sig); err != nil {
		return PublicKey{}, err
	}
	n := c.Order()

	var Rx *scalar.Int
	if sig.Recovery.Overflow {
		Rx = sig.R.AddView(n)
	} else {
		Rx = sig.R.Clone()
	}
	defer Rx.Free()
	if Rx.CmpView(c.FieldPrime()) >= 0 {
		return PublicKey{}, newError(ErrOutOfBounds, "R.x is not less than the field prime")
	}
	R, err := c.decompress(Rx.Big(), sig.Recovery.Odd)
	if err != nil {
		return PublicKey{}, err
	}

	rinv, err := sig.R.InverseMod(n)
	if err != nil {
		return PublicKey{}, err
	}
	z := c.subjectScalar(subject)
	negz, err := z.NegMod(n)
	if err != nil {
		return PublicKey{}, err
	}
	u1, err := negz.MulMod(rinv, n)
	if err != nil {
		return PublicKey{}, err
	}
	u2, err := sig.S.MulMod(rinv, n)
	if err != nil {
		return PublicKey{}, err
	}

	return c.publicKey(c.combine(u1, u2, R))
}
