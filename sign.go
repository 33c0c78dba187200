package ecc

import (
	"context"
	"errors"
	"fmt"

	"github.com/athanorlabs/go-ecc/logging"
	"github.com/athanorlabs/go-ecc/scalar"
)

// SignOptions selects the signature encoding.
type SignOptions struct {
	// Recoverable prefixes r || s with a recovery byte.
	Recoverable bool
	// Compressed marks the recovery byte as pairing with a compressed
	// public key (31+recid instead of 27+recid).
	Compressed bool
}

// Sign signs subject with priv using a fresh nonce from the configured
// entropy source. A nonce that yields r == 0 or s == 0 is discarded and a
// new one drawn, up to the configured number of attempts.
func (c *Curve) Sign(subject []byte, priv PrivateKey, opts SignOptions) ([]byte, error) {
	d, err := c.privateScalar(priv)
	if err != nil {
		return nil, err
	}
	defer d.Free()

	ctx := context.Background()
	for attempt := 1; attempt <= c.maxSignAttempts; attempt++ {
		entropy, err := c.rand.bytes(c.length)
		if err != nil {
			return nil, err
		}
		sig, err := c.sign(subject, d, entropy, opts)
		ZeroizeBytes(entropy)
		if errors.Is(err, ErrInvalidNonce) {
			c.logger.Debug(ctx, "nonce rejected, retrying", logging.Redacted("nonce"), "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}
		defer sig.Free()
		return c.EncodeSignature(sig)
	}
	return nil, newError(ErrInvalidNonce,
		fmt.Sprintf("no usable nonce after %d attempts", c.maxSignAttempts))
}

// SignWithNonce signs subject with priv using the caller supplied nonce
// entropy. It fails with ErrInvalidNonce if the nonce is unusable; the
// caller must retry with fresh entropy.
func (c *Curve) SignWithNonce(subject []byte, priv PrivateKey, entropy []byte, opts SignOptions) ([]byte, error) {
	d, err := c.privateScalar(priv)
	if err != nil {
		return nil, err
	}
	defer d.Free()

	sig, err := c.sign(subject, d, entropy, opts)
	if err != nil {
		return nil, err
	}
	defer sig.Free()
	return c.EncodeSignature(sig)
}

// padNonce returns k+n or k+2n, whichever keeps the bit length fixed, so
// the scalar multiplication does not leak the length of k.
func (c *Curve) padNonce(k *scalar.Int) *scalar.Int {
	k1 := k.AddView(c.Order())
	k2 := k1.AddView(c.Order())
	if k1.BitLen() == k2.BitLen() {
		k1.Free()
		return k2
	}
	k2.Free()
	return k1
}

func (c *Curve) sign(subject []byte, d *scalar.Int, entropy []byte, opts SignOptions) (*Signature, error) {
	n := c.Order()

	k := scalar.FromBytes(entropy)
	defer k.Free()
	reduced, err := k.Mod(n)
	if err != nil {
		return nil, err
	}
	zeroNonce := reduced.IsZero()
	reduced.Free()
	if zeroNonce {
		return nil, newError(ErrInvalidNonce, "nonce is zero modulo the group order")
	}

	padded := c.padNonce(k)
	defer padded.Free()

	R, err := c.scalarBaseMultiply(padded)
	if err != nil {
		return nil, err
	}
	rx, ry, err := c.affine(R)
	if err != nil {
		return nil, err
	}

	Rx, err := scalar.FromBig(rx)
	if err != nil {
		return nil, err
	}
	defer Rx.Free()
	r, err := Rx.Mod(n)
	if err != nil {
		return nil, err
	}
	if r.IsZero() {
		return nil, newError(ErrInvalidNonce, "nonce yields r = 0")
	}

	kinv, err := padded.InverseMod(n)
	if err != nil {
		r.Free()
		return nil, err
	}
	defer kinv.Free()

	z := c.subjectScalar(subject)
	rd := r.Mul(d)
	defer rd.Free()
	sum := z.Add(rd)
	defer sum.Free()

	s, err := kinv.MulMod(sum, n)
	if err != nil {
		r.Free()
		return nil, err
	}
	if s.IsZero() {
		r.Free()
		return nil, newError(ErrInvalidNonce, "nonce yields s = 0")
	}

	sig := &Signature{R: r, S: s}
	if !opts.Recoverable {
		return sig, nil
	}

	q, err := Rx.DivView(n)
	if err != nil {
		sig.Free()
		return nil, err
	}
	if q.Cmp(scalar.FromUint64(2)) >= 0 {
		sig.Free()
		return nil, newError(ErrRecoveryIDTooLarge,
			fmt.Sprintf("R.x exceeds the group order %s times", q))
	}
	sig.Recovery = &RecoveryID{
		Odd:      ry.Bit(0) == 1,
		Overflow: !q.IsZero(),
	}
	sig.Compressed = opts.Compressed
	return sig, nil
}
