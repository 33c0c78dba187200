// Package weierstrass implements point arithmetic for short Weierstrass
// curves y² = x³ + ax + b over prime fields with arbitrary a, using Jacobian
// coordinates over math/big.
//
// For an affine point (x, y) the Jacobian coordinates are (X, Y, Z) with
// x = X/Z² and y = Y/Z³. Z = 0 is the point at infinity, which crosses the
// affine API as (0, 0).
package weierstrass

import (
	"math/big"

	"github.com/athanorlabs/go-ecc/types"
)

var _ types.Backend = &Curve{}

// Curve is a stateless arithmetic provider for a single set of parameters.
type Curve struct {
	params *types.Params
}

// New returns a provider for params. The parameters are not copied and must
// not be modified afterwards.
func New(params *types.Params) *Curve {
	return &Curve{params: params}
}

func (c *Curve) Params() *types.Params {
	return c.params
}

func (*Curve) Implementation() string {
	return "weierstrass/math-big"
}

// IsOnCurve reports whether (x, y) is an affine point on the curve. The
// point at infinity is not.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	p := c.params.P
	if x.Sign() < 0 || x.Cmp(p) >= 0 || y.Sign() < 0 || y.Cmp(p) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, p)
	return y2.Cmp(rhs(c.params, x)) == 0
}

// rhs returns x³ + ax + b mod p.
func rhs(params *types.Params, x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)

	ax := new(big.Int).Mul(params.A, x)
	x3.Add(x3, ax)
	x3.Add(x3, params.B)
	return x3.Mod(x3, params.P)
}

// DecompressY returns the y coordinate for x whose parity matches odd, or
// false if x is out of range or no such point exists.
func DecompressY(params *types.Params, x *big.Int, odd bool) (*big.Int, bool) {
	p := params.P
	if x.Sign() < 0 || x.Cmp(p) >= 0 {
		return nil, false
	}
	y := new(big.Int).ModSqrt(rhs(params, x), p)
	if y == nil {
		return nil, false
	}
	if (y.Bit(0) == 1) != odd {
		if y.Sign() == 0 {
			return nil, false
		}
		y.Sub(p, y)
	}
	return y, true
}

func (c *Curve) DecompressY(x *big.Int, odd bool) (*big.Int, bool) {
	return DecompressY(c.params, x, odd)
}

func isInfinity(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}

// toJacobian lifts an affine point, mapping (0, 0) to Z = 0.
func toJacobian(x, y *big.Int) (*big.Int, *big.Int, *big.Int) {
	z := new(big.Int)
	if !isInfinity(x, y) {
		z.SetInt64(1)
	}
	return new(big.Int).Set(x), new(big.Int).Set(y), z
}

func (c *Curve) affineFromJacobian(x, y, z *big.Int) (*big.Int, *big.Int) {
	if z.Sign() == 0 {
		return new(big.Int), new(big.Int)
	}
	p := c.params.P
	zinv := new(big.Int).ModInverse(z, p)
	zinvsq := new(big.Int).Mul(zinv, zinv)

	xOut := new(big.Int).Mul(x, zinvsq)
	xOut.Mod(xOut, p)
	zinvsq.Mul(zinvsq, zinv)
	yOut := new(big.Int).Mul(y, zinvsq)
	yOut.Mod(yOut, p)
	return xOut, yOut
}

// addJacobian returns the sum of two Jacobian points.
func (c *Curve) addJacobian(x1, y1, z1, x2, y2, z2 *big.Int) (*big.Int, *big.Int, *big.Int) {
	// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#addition-add-2007-bl
	if z1.Sign() == 0 {
		return new(big.Int).Set(x2), new(big.Int).Set(y2), new(big.Int).Set(z2)
	}
	if z2.Sign() == 0 {
		return new(big.Int).Set(x1), new(big.Int).Set(y1), new(big.Int).Set(z1)
	}
	p := c.params.P

	z1z1 := new(big.Int).Mul(z1, z1)
	z1z1.Mod(z1z1, p)
	z2z2 := new(big.Int).Mul(z2, z2)
	z2z2.Mod(z2z2, p)

	u1 := new(big.Int).Mul(x1, z2z2)
	u1.Mod(u1, p)
	u2 := new(big.Int).Mul(x2, z1z1)
	u2.Mod(u2, p)

	s1 := new(big.Int).Mul(y1, z2)
	s1.Mul(s1, z2z2)
	s1.Mod(s1, p)
	s2 := new(big.Int).Mul(y2, z1)
	s2.Mul(s2, z1z1)
	s2.Mod(s2, p)

	h := new(big.Int).Sub(u2, u1)
	h.Mod(h, p)
	r := new(big.Int).Sub(s2, s1)
	r.Mod(r, p)

	if h.Sign() == 0 {
		if r.Sign() == 0 {
			return c.doubleJacobian(x1, y1, z1)
		}
		// P + (-P)
		return new(big.Int), new(big.Int), new(big.Int)
	}

	i := new(big.Int).Lsh(h, 1)
	i.Mul(i, i)
	j := new(big.Int).Mul(h, i)
	r.Lsh(r, 1)
	v := new(big.Int).Mul(u1, i)

	x3 := new(big.Int).Mul(r, r)
	x3.Sub(x3, j)
	x3.Sub(x3, v)
	x3.Sub(x3, v)
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(v, x3)
	y3.Mul(y3, r)
	s1.Mul(s1, j)
	s1.Lsh(s1, 1)
	y3.Sub(y3, s1)
	y3.Mod(y3, p)

	z3 := new(big.Int).Add(z1, z2)
	z3.Mul(z3, z3)
	z3.Sub(z3, z1z1)
	z3.Sub(z3, z2z2)
	z3.Mul(z3, h)
	z3.Mod(z3, p)

	return x3, y3, z3
}

// doubleJacobian returns 2·(x, y, z) for any curve coefficient a.
func (c *Curve) doubleJacobian(x, y, z *big.Int) (*big.Int, *big.Int, *big.Int) {
	// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#doubling-dbl-2007-bl
	p := c.params.P
	if z.Sign() == 0 || y.Sign() == 0 {
		return new(big.Int), new(big.Int), new(big.Int)
	}

	xx := new(big.Int).Mul(x, x)
	xx.Mod(xx, p)
	yy := new(big.Int).Mul(y, y)
	yy.Mod(yy, p)
	yyyy := new(big.Int).Mul(yy, yy)
	yyyy.Mod(yyyy, p)
	zz := new(big.Int).Mul(z, z)
	zz.Mod(zz, p)

	s := new(big.Int).Add(x, yy)
	s.Mul(s, s)
	s.Sub(s, xx)
	s.Sub(s, yyyy)
	s.Lsh(s, 1)
	s.Mod(s, p)

	m := new(big.Int).Lsh(xx, 1)
	m.Add(m, xx)
	if c.params.A.Sign() != 0 {
		azz := new(big.Int).Mul(zz, zz)
		azz.Mul(azz, c.params.A)
		m.Add(m, azz)
	}
	m.Mod(m, p)

	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, s)
	x3.Sub(x3, s)
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(s, x3)
	y3.Mul(y3, m)
	yyyy.Lsh(yyyy, 3)
	y3.Sub(y3, yyyy)
	y3.Mod(y3, p)

	z3 := new(big.Int).Add(y, z)
	z3.Mul(z3, z3)
	z3.Sub(z3, yy)
	z3.Sub(z3, zz)
	z3.Mod(z3, p)

	return x3, y3, z3
}

// Add returns the sum of two affine points.
func (c *Curve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	jx1, jy1, jz1 := toJacobian(x1, y1)
	jx2, jy2, jz2 := toJacobian(x2, y2)
	return c.affineFromJacobian(c.addJacobian(jx1, jy1, jz1, jx2, jy2, jz2))
}

// ScalarMult returns k·(bx, by). k is a big-endian integer of any length and
// is reduced modulo the group order first.
func (c *Curve) ScalarMult(bx, by *big.Int, k []byte) (*big.Int, *big.Int) {
	e := new(big.Int).SetBytes(k)
	e.Mod(e, c.params.N)

	px, py, pz := toJacobian(bx, by)
	x, y, z := new(big.Int), new(big.Int), new(big.Int)
	for i := e.BitLen() - 1; i >= 0; i-- {
		x, y, z = c.doubleJacobian(x, y, z)
		if e.Bit(i) == 1 {
			x, y, z = c.addJacobian(px, py, pz, x, y, z)
		}
	}
	return c.affineFromJacobian(x, y, z)
}

// ScalarBaseMult returns k·G.
func (c *Curve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return c.ScalarMult(c.params.Gx, c.params.Gy, k)
}
