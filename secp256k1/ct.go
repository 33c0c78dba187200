package secp256k1

import (
	"math/big"

	voi "gitlab.com/yawning/secp256k1-voi"

	"github.com/athanorlabs/go-ecc/types"
)

var _ Curve = &ConstantTimeCurve{}

// ConstantTimeCurve runs scalar multiplication in constant time. Conversions
// to and from math/big at the API boundary are not constant time.
type ConstantTimeCurve struct {
	params *types.Params
}

func NewConstantTimeCurve() Curve {
	return &ConstantTimeCurve{
		params: Params(),
	}
}

func (c *ConstantTimeCurve) Params() *types.Params {
	return c.params
}

func (*ConstantTimeCurve) Implementation() string {
	return "yawning/secp256k1-voi"
}

func coord(v *big.Int) *[32]byte {
	var b [32]byte
	v.FillBytes(b[:])
	return &b
}

func (c *ConstantTimeCurve) inRange(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(c.params.P) < 0
}

func (c *ConstantTimeCurve) toPoint(x, y *big.Int) (*voi.Point, error) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return voi.NewIdentityPoint(), nil
	}
	if !c.inRange(x) || !c.inRange(y) {
		return nil, types.NewError(types.ErrInvalidPoint, "secp256k1: coordinate out of range")
	}
	return voi.NewPointFromCoords(coord(x), coord(y))
}

func fromPoint(p *voi.Point) (*big.Int, *big.Int) {
	if p.IsIdentity() == 1 {
		return new(big.Int), new(big.Int)
	}
	b := p.UncompressedBytes()
	return new(big.Int).SetBytes(b[1:33]), new(big.Int).SetBytes(b[33:65])
}

func (c *ConstantTimeCurve) scalar(k []byte) *voi.Scalar {
	e := new(big.Int).SetBytes(k)
	e.Mod(e, c.params.N)
	var b [32]byte
	e.FillBytes(b[:])
	s, err := voi.NewScalarFromCanonicalBytes(&b)
	if err != nil {
		// unreachable: e < n
		panic(err)
	}
	return s
}

func (c *ConstantTimeCurve) IsOnCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return false
	}
	_, err := c.toPoint(x, y)
	return err == nil
}

func (c *ConstantTimeCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p, err := c.toPoint(x1, y1)
	if err != nil {
		return new(big.Int), new(big.Int)
	}
	q, err := c.toPoint(x2, y2)
	if err != nil {
		return new(big.Int), new(big.Int)
	}
	return fromPoint(voi.NewIdentityPoint().Add(p, q))
}

func (c *ConstantTimeCurve) ScalarMult(x, y *big.Int, k []byte) (*big.Int, *big.Int) {
	p, err := c.toPoint(x, y)
	if err != nil {
		return new(big.Int), new(big.Int)
	}
	return fromPoint(voi.NewIdentityPoint().ScalarMult(c.scalar(k), p))
}

func (c *ConstantTimeCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return fromPoint(voi.NewIdentityPoint().ScalarBaseMult(c.scalar(k)))
}

func (c *ConstantTimeCurve) DecompressY(x *big.Int, odd bool) (*big.Int, bool) {
	if !c.inRange(x) {
		return nil, false
	}
	var buf [33]byte
	buf[0] = 0x02
	if odd {
		buf[0] = 0x03
	}
	x.FillBytes(buf[1:])
	p, err := voi.NewIdentityPoint().SetCompressedBytes(buf[:])
	if err != nil {
		return nil, false
	}
	_, y := fromPoint(p)
	return y, true
}
