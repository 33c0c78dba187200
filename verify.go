package ecc

import (
	"fmt"

	"github.com/athanorlabs/go-ecc/scalar"
)

// Verify checks a 2L byte r || s signature over subject against pub. A
// signature that does not match returns false and a nil error; malformed
// input, out of range r or s and invalid public keys return an error.
func (c *Curve) Verify(signature, subject []byte, pub PublicKey) (bool, error) {
	if len(signature) != 2*c.length {
		return false, newError(ErrMalformedSignature,
			fmt.Sprintf("signature must be %d bytes, got %d", 2*c.length, len(signature)))
	}
	sig, err := c.ParseSignature(signature)
	if err != nil {
		return false, err
	}
	defer sig.Free()
	return c.verify(sig, subject, pub)
}

// VerifyRecoverable is Verify for 1+2L byte recoverable signatures. The
// recovery byte is validated but not otherwise used.
func (c *Curve) VerifyRecoverable(signature, subject []byte, pub PublicKey) (bool, error) {
	if len(signature) != 1+2*c.length {
		return false, newError(ErrMalformedSignature,
			fmt.Sprintf("recoverable signature must be %d bytes, got %d", 1+2*c.length, len(signature)))
	}
	sig, err := c.ParseSignature(signature)
	if err != nil {
		return false, err
	}
	defer sig.Free()
	return c.verify(sig, subject, pub)
}

func (c *Curve) verify(sig *Signature, subject []byte, pub PublicKey) (bool, error) {
	if err := c.checkRS(sig); err != nil {
		return false, err
	}
	q, err := c.publicPoint(pub)
	if err != nil {
		return false, err
	}

	n := c.Order()
	w, err := sig.S.InverseMod(n)
	if err != nil {
		return false, err
	}
	defer w.Free()

	z := c.subjectScalar(subject)
	u1, err := z.MulMod(w, n)
	if err != nil {
		return false, err
	}
	u2, err := sig.R.MulMod(w, n)
	if err != nil {
		return false, err
	}

	p := c.combine(u1, u2, q)
	x, _, err := c.affine(p)
	if err != nil {
		// u1·G + u2·Q = O never verifies.
		return false, nil
	}

	xs, err := scalar.FromBig(x)
	if err != nil {
		return false, err
	}
	defer xs.Free()
	v, err := xs.Mod(n)
	if err != nil {
		return false, err
	}
	defer v.Free()
	return v.Equal(sig.R), nil
}
