package ecc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-ecc/logging"
	"github.com/athanorlabs/go-ecc/scalar"
	"github.com/athanorlabs/go-ecc/types"
)

// Curve is the immutable context for one named curve. It is safe for
// concurrent use.
type Curve struct {
	name      string
	params    *types.Params
	backend   types.Backend
	orderBits int
	length    int // encoded coordinate length in bytes

	rand            randSource
	logger          logging.Logger
	maxSignAttempts int
}

func newCurve(name string, backend types.Backend, cfg Config) *Curve {
	cfg = cfg.withDefaults()
	params := backend.Params()
	c := &Curve{
		name:            name,
		params:          params,
		backend:         backend,
		orderBits:       params.N.BitLen(),
		length:          (params.P.BitLen() + 7) / 8,
		rand:            randSource{r: cfg.Rand},
		logger:          cfg.Logger.With("curve", name),
		maxSignAttempts: cfg.MaxSignAttempts,
	}

	impl := "unknown"
	if d, ok := backend.(types.Describer); ok {
		impl = d.Implementation()
	}
	c.logger.Debug(context.Background(), "curve ready",
		"provider", impl,
		"order_bits", c.orderBits,
		"coordinate_length", c.length,
	)
	return c
}

// Name returns the canonical curve name.
func (c *Curve) Name() string {
	return c.name
}

// OrderBits returns the bit length of the group order n.
func (c *Curve) OrderBits() int {
	return c.orderBits
}

// PublicKeyLength returns ceil(bitlen(p)/8), the width of every fixed width
// field on this curve.
func (c *Curve) PublicKeyLength() int {
	return c.length
}

// FieldPrime borrows the field prime p.
func (c *Curve) FieldPrime() scalar.View {
	return scalar.Borrow(c.params.P)
}

// Order borrows the group order n.
func (c *Curve) Order() scalar.View {
	return scalar.Borrow(c.params.N)
}

// point is an affine point. (0, 0) is the point at infinity.
type point struct {
	x, y *big.Int
}

func (p point) isInfinity() bool {
	return p.x.Sign() == 0 && p.y.Sign() == 0
}

func (c *Curve) generator() point {
	return point{x: c.params.Gx, y: c.params.Gy}
}

// affine returns the coordinates of p or ErrPointAtInfinity.
func (c *Curve) affine(p point) (*big.Int, *big.Int, error) {
	if p.isInfinity() {
		return nil, nil, newError(ErrPointAtInfinity, "point at infinity has no affine coordinates")
	}
	return p.x, p.y, nil
}

// checkMultiplier rejects scalars congruent to zero modulo n.
func (c *Curve) checkMultiplier(k *scalar.Int) error {
	r, err := k.Mod(c.Order())
	if err != nil {
		return err
	}
	defer r.Free()
	if r.IsZero() {
		return newError(ErrInvalidScalar, "scalar is zero modulo the group order")
	}
	return nil
}

// scalarMultiply returns k·p. p must be a valid curve point.
func (c *Curve) scalarMultiply(k *scalar.Int, p point) (point, error) {
	if err := c.checkMultiplier(k); err != nil {
		return point{}, err
	}
	kb := k.Bytes()
	defer ZeroizeBytes(kb)
	x, y := c.backend.ScalarMult(p.x, p.y, kb)
	return point{x: x, y: y}, nil
}

// scalarBaseMultiply returns k·G.
func (c *Curve) scalarBaseMultiply(k *scalar.Int) (point, error) {
	if err := c.checkMultiplier(k); err != nil {
		return point{}, err
	}
	kb := k.Bytes()
	defer ZeroizeBytes(kb)
	x, y := c.backend.ScalarBaseMult(kb)
	return point{x: x, y: y}, nil
}

// combine returns u1·G + u2·q. Zero coefficients contribute the identity.
func (c *Curve) combine(u1, u2 *scalar.Int, q point) point {
	x1, y1 := c.backend.ScalarBaseMult(u1.Bytes())
	x2, y2 := c.backend.ScalarMult(q.x, q.y, u2.Bytes())
	x, y := c.backend.Add(x1, y1, x2, y2)
	return point{x: x, y: y}
}

func (c *Curve) isOnCurve(p point) bool {
	return c.backend.IsOnCurve(p.x, p.y)
}

// fixed encodes v as exactly PublicKeyLength bytes.
func (c *Curve) fixed(v *big.Int) ([]byte, error) {
	if (v.BitLen()+7)/8 > c.length {
		return nil, newError(ErrEncodingTooShort,
			fmt.Sprintf("value needs %d bytes, width is %d", (v.BitLen()+7)/8, c.length))
	}
	out := make([]byte, c.length)
	v.FillBytes(out)
	return out, nil
}

// subjectScalar takes the leading ceil(bitlen(n)/8) bytes of the digest.
func (c *Curve) subjectScalar(subject []byte) *scalar.Int {
	n := (c.orderBits + 7) / 8
	if len(subject) > n {
		subject = subject[:n]
	}
	return scalar.FromBytes(subject)
}

// DecompressPoint parses a compressed point (0x02|0x03 || x) and solves the
// curve equation for y of the encoded parity.
func (c *Curve) DecompressPoint(b []byte) (PublicKey, error) {
	if len(b) != 1+c.length {
		return PublicKey{}, newError(ErrInvalidPoint,
			fmt.Sprintf("compressed point must be %d bytes, got %d", 1+c.length, len(b)))
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		return PublicKey{}, newError(ErrInvalidPoint,
			fmt.Sprintf("invalid compressed point prefix %d", b[0]))
	}
	x := new(big.Int).SetBytes(b[1:])
	p, err := c.decompress(x, b[0] == 0x03)
	if err != nil {
		return PublicKey{}, err
	}
	return c.publicKey(p)
}

func (c *Curve) decompress(x *big.Int, odd bool) (point, error) {
	if x.Cmp(c.params.P) >= 0 {
		return point{}, newError(ErrInvalidPoint, "x coordinate is not less than the field prime")
	}
	y, ok := c.backend.DecompressY(x, odd)
	if !ok {
		return point{}, newError(ErrInvalidPoint, "x coordinate is not on the curve")
	}
	return point{x: x, y: y}, nil
}

// ParsePublicKey accepts the explicit (x || y), SEC1 uncompressed
// (0x04 || x || y) and compressed encodings and checks the point is on the
// curve.
func (c *Curve) ParsePublicKey(b []byte) (PublicKey, error) {
	switch len(b) {
	case 1 + c.length:
		return c.DecompressPoint(b)
	case 2 * c.length:
	case 1 + 2*c.length:
		if b[0] != 0x04 {
			return PublicKey{}, newError(ErrInvalidPoint,
				fmt.Sprintf("invalid uncompressed point prefix %d", b[0]))
		}
		b = b[1:]
	default:
		return PublicKey{}, newError(ErrInvalidPoint,
			fmt.Sprintf("invalid public key length %d", len(b)))
	}

	pub := PublicKey{
		X: append([]byte(nil), b[:c.length]...),
		Y: append([]byte(nil), b[c.length:]...),
	}
	if _, err := c.publicPoint(pub); err != nil {
		return PublicKey{}, err
	}
	return pub, nil
}

// publicPoint validates pub and returns it as a curve point.
func (c *Curve) publicPoint(pub PublicKey) (point, error) {
	if len(pub.X) != c.length || len(pub.Y) != c.length {
		return point{}, newError(ErrInvalidPoint,
			fmt.Sprintf("public key coordinates must be %d bytes", c.length))
	}
	p := point{
		x: new(big.Int).SetBytes(pub.X),
		y: new(big.Int).SetBytes(pub.Y),
	}
	if !c.isOnCurve(p) {
		return point{}, newError(ErrInvalidPoint, "public key is not on the curve")
	}
	return p, nil
}

func (c *Curve) publicKey(p point) (PublicKey, error) {
	x, y, err := c.affine(p)
	if err != nil {
		return PublicKey{}, err
	}
	xb, err := c.fixed(x)
	if err != nil {
		return PublicKey{}, err
	}
	yb, err := c.fixed(y)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{X: xb, Y: yb}, nil
}
