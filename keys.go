package ecc

import (
	"context"
	"fmt"
	"io"

	"github.com/athanorlabs/go-ecc/logging"
	"github.com/athanorlabs/go-ecc/scalar"
	"github.com/athanorlabs/go-ecc/types"
)

// maxKeySamples bounds NewPrivateKey. With the top byte masked to the order
// bit length a sample is rejected with probability below 1/2.
const maxKeySamples = 128

// PrivateKey is a big-endian scalar in [1, n-1], PublicKeyLength bytes long.
type PrivateKey []byte

// Zeroize wipes the key in place.
func (k PrivateKey) Zeroize() {
	ZeroizeBytes(k)
}

// PublicKey is an affine point with both coordinates PublicKeyLength bytes
// long.
type PublicKey struct {
	X, Y []byte
}

// Bytes returns the explicit encoding x || y.
func (p PublicKey) Bytes() []byte {
	out := make([]byte, 0, len(p.X)+len(p.Y))
	out = append(out, p.X...)
	return append(out, p.Y...)
}

// Compressed returns (0x02|parity(y)) || x.
func (p PublicKey) Compressed() []byte {
	out := make([]byte, 1, 1+len(p.X))
	out[0] = 0x02
	if len(p.Y) > 0 && p.Y[len(p.Y)-1]&1 == 1 {
		out[0] = 0x03
	}
	return append(out, p.X...)
}

// Uncompressed returns the SEC1 encoding 0x04 || x || y.
func (p PublicKey) Uncompressed() []byte {
	out := make([]byte, 1, 1+len(p.X)+len(p.Y))
	out[0] = 0x04
	out = append(out, p.X...)
	return append(out, p.Y...)
}

type randSource struct {
	r io.Reader
}

func (s randSource) bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(s.r, b); err != nil {
		return nil, types.Error{
			Err:         ErrEntropy,
			Description: fmt.Sprintf("reading %d random bytes: %v", n, err),
		}
	}
	return b, nil
}

// privateScalar validates k and returns it as a scalar.
func (c *Curve) privateScalar(k PrivateKey) (*scalar.Int, error) {
	if len(k) != c.length {
		return nil, newError(ErrInvalidScalar,
			fmt.Sprintf("private key must be %d bytes, got %d", c.length, len(k)))
	}
	d := scalar.FromBytes(k)
	if d.IsZero() || d.CmpView(c.Order()) >= 0 {
		d.Free()
		return nil, newError(ErrInvalidScalar, "private key is not in [1, n-1]")
	}
	return d, nil
}

// ParsePrivateKey validates b and returns a copy of it as a PrivateKey.
func (c *Curve) ParsePrivateKey(b []byte) (PrivateKey, error) {
	d, err := c.privateScalar(b)
	if err != nil {
		return nil, err
	}
	d.Free()
	return append(PrivateKey(nil), b...), nil
}

// NewPrivateKey draws a uniformly random private key. Samples outside
// [1, n-1] are discarded and redrawn.
func (c *Curve) NewPrivateKey() (PrivateKey, error) {
	excess := 8*c.length - c.orderBits
	for i := 0; i < maxKeySamples; i++ {
		b, err := c.rand.bytes(c.length)
		if err != nil {
			return nil, err
		}
		if excess > 0 && excess < 8 {
			b[0] &= 0xff >> excess
		}

		d := scalar.FromBytes(b)
		ok := !d.IsZero() && d.CmpView(c.Order()) < 0
		d.Free()
		if ok {
			return b, nil
		}
		ZeroizeBytes(b)
		c.logger.Debug(context.Background(), "private key sample out of range, resampling",
			logging.Redacted("sample"), "attempt", i+1)
	}
	return nil, newError(ErrEntropy, "random source keeps producing out of range keys")
}

// PrivateToPublic returns k·G.
func (c *Curve) PrivateToPublic(k PrivateKey) (PublicKey, error) {
	d, err := c.privateScalar(k)
	if err != nil {
		return PublicKey{}, err
	}
	defer d.Free()

	p, err := c.scalarBaseMultiply(d)
	if err != nil {
		return PublicKey{}, err
	}
	return c.publicKey(p)
}
