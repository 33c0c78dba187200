// Package nist provides arithmetic for the NIST prime curves P-224, P-256,
// P-384 and P-521 on top of crypto/elliptic.
package nist

import (
	"crypto/elliptic"
	"math/big"

	"github.com/athanorlabs/go-ecc/types"
	"github.com/athanorlabs/go-ecc/weierstrass"
)

var _ types.Backend = &Curve{}

type Curve struct {
	inner  elliptic.Curve
	params *types.Params
}

func newCurve(inner elliptic.Curve, name string) *Curve {
	ep := inner.Params()
	return &Curve{
		inner: inner,
		params: &types.Params{
			Name:    name,
			P:       ep.P,
			N:       ep.N,
			A:       new(big.Int).Sub(ep.P, big.NewInt(3)),
			B:       ep.B,
			Gx:      ep.Gx,
			Gy:      ep.Gy,
			BitSize: ep.BitSize,
		},
	}
}

// P224 returns secp224r1.
func P224() *Curve { return newCurve(elliptic.P224(), "secp224r1") }

// P256 returns prime256v1 (secp256r1).
func P256() *Curve { return newCurve(elliptic.P256(), "prime256v1") }

// P384 returns secp384r1.
func P384() *Curve { return newCurve(elliptic.P384(), "secp384r1") }

// P521 returns secp521r1.
func P521() *Curve { return newCurve(elliptic.P521(), "secp521r1") }

func (c *Curve) Params() *types.Params {
	return c.params
}

func (c *Curve) Implementation() string {
	return "crypto/elliptic " + c.inner.Params().Name
}

func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	return c.inner.IsOnCurve(x, y)
}

func infinity() (*big.Int, *big.Int) {
	return new(big.Int), new(big.Int)
}

func (c *Curve) valid(x, y *big.Int) bool {
	return (x.Sign() == 0 && y.Sign() == 0) || c.inner.IsOnCurve(x, y)
}

// Add returns the sum of two points. Points that are neither on the curve
// nor (0, 0) yield (0, 0); crypto/elliptic would panic on them.
func (c *Curve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	if !c.valid(x1, y1) || !c.valid(x2, y2) {
		return infinity()
	}
	return c.inner.Add(x1, y1, x2, y2)
}

func (c *Curve) ScalarMult(x, y *big.Int, k []byte) (*big.Int, *big.Int) {
	if !c.valid(x, y) {
		return infinity()
	}
	return c.inner.ScalarMult(x, y, k)
}

func (c *Curve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return c.inner.ScalarBaseMult(k)
}

func (c *Curve) DecompressY(x *big.Int, odd bool) (*big.Int, bool) {
	return weierstrass.DecompressY(c.params, x, odd)
}
