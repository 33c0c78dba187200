// Package secp256k1 provides point arithmetic for the secp256k1 curve.
//
// NewCurve is backed by github.com/decred/dcrd/dcrec/secp256k1/v4 and runs
// in variable time. NewConstantTimeCurve is backed by
// gitlab.com/yawning/secp256k1-voi.
package secp256k1

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/athanorlabs/go-ecc/types"
)

type Curve = types.Backend

var _ Curve = &CurveImpl{}

// Params returns the secp256k1 domain parameters.
func Params() *types.Params {
	ep := secp256k1.S256().Params()
	return &types.Params{
		Name:    "secp256k1",
		P:       ep.P,
		N:       ep.N,
		A:       new(big.Int),
		B:       ep.B,
		Gx:      ep.Gx,
		Gy:      ep.Gy,
		BitSize: ep.BitSize,
	}
}

type CurveImpl struct {
	params *types.Params
}

func NewCurve() Curve {
	return &CurveImpl{
		params: Params(),
	}
}

func (c *CurveImpl) Params() *types.Params {
	return c.params
}

func (*CurveImpl) Implementation() string {
	return "decred/dcrec/secp256k1"
}

// fieldFromBig loads v into a field element. It reports false if v is not
// in [0, p).
func fieldFromBig(v *big.Int, p *big.Int) (secp256k1.FieldVal, bool) {
	var f secp256k1.FieldVal
	if v.Sign() < 0 || v.Cmp(p) >= 0 {
		return f, false
	}
	overflow := f.SetByteSlice(v.Bytes())
	return f, !overflow
}

func fieldToBig(f *secp256k1.FieldVal) *big.Int {
	f.Normalize()
	b := f.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// scalarFromBytes reduces k modulo n. ModNScalar.SetByteSlice truncates
// to 32 bytes, so longer inputs are reduced with math/big first.
func (c *CurveImpl) scalarFromBytes(k []byte) *secp256k1.ModNScalar {
	s := new(secp256k1.ModNScalar)
	if len(k) <= 32 {
		s.SetByteSlice(k)
		return s
	}
	e := new(big.Int).SetBytes(k)
	e.Mod(e, c.params.N)
	s.SetByteSlice(e.Bytes())
	return s
}

// toJacobian maps (0, 0) to the point at infinity. Other inputs are
// expected to be valid curve points.
func (c *CurveImpl) toJacobian(x, y *big.Int) secp256k1.JacobianPoint {
	var p secp256k1.JacobianPoint
	if x.Sign() == 0 && y.Sign() == 0 {
		return p
	}
	fx, _ := fieldFromBig(x, c.params.P)
	fy, _ := fieldFromBig(y, c.params.P)
	p.X.Set(&fx)
	p.Y.Set(&fy)
	p.Z.SetInt(1)
	return p
}

func fromJacobian(p *secp256k1.JacobianPoint) (*big.Int, *big.Int) {
	if (p.X.IsZero() && p.Y.IsZero()) || p.Z.Normalize().IsZero() {
		return new(big.Int), new(big.Int)
	}
	p.ToAffine()
	return fieldToBig(&p.X), fieldToBig(&p.Y)
}

func (c *CurveImpl) IsOnCurve(x, y *big.Int) bool {
	fx, ok := fieldFromBig(x, c.params.P)
	if !ok {
		return false
	}
	fy, ok := fieldFromBig(y, c.params.P)
	if !ok {
		return false
	}
	if x.Sign() == 0 && y.Sign() == 0 {
		return false
	}
	return secp256k1.NewPublicKey(&fx, &fy).IsOnCurve()
}

func (c *CurveImpl) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p1 := c.toJacobian(x1, y1)
	p2 := c.toJacobian(x2, y2)
	var result secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p1, &p2, &result)
	return fromJacobian(&result)
}

func (c *CurveImpl) ScalarMult(x, y *big.Int, k []byte) (*big.Int, *big.Int) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return new(big.Int), new(big.Int)
	}
	point := c.toJacobian(x, y)
	var result secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(c.scalarFromBytes(k), &point, &result)
	return fromJacobian(&result)
}

func (c *CurveImpl) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(c.scalarFromBytes(k), &result)
	return fromJacobian(&result)
}

func (c *CurveImpl) DecompressY(x *big.Int, odd bool) (*big.Int, bool) {
	fx, ok := fieldFromBig(x, c.params.P)
	if !ok {
		return nil, false
	}
	var fy secp256k1.FieldVal
	if !secp256k1.DecompressY(&fx, odd, &fy) {
		return nil, false
	}
	return fieldToBig(&fy), true
}
