package types

import "math/big"

// Params describes a short Weierstrass curve y² = x³ + ax + b over GF(P)
// with a base point of prime order N.
type Params struct {
	Name    string
	P       *big.Int // field prime
	N       *big.Int // order of the base point
	A, B    *big.Int // curve coefficients, reduced mod P
	Gx, Gy  *big.Int // base point
	BitSize int      // bit length of P
}

// Backend is the point arithmetic provider the engine is written against.
//
// Points are affine (x, y) pairs; (0, 0) denotes the point at infinity.
// Scalars are big-endian byte strings of any length and are reduced modulo N
// by the backend. Implementations must be safe for concurrent use.
type Backend interface {
	Params() *Params
	IsOnCurve(x, y *big.Int) bool
	Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int)
	ScalarMult(x, y *big.Int, k []byte) (rx, ry *big.Int)
	ScalarBaseMult(k []byte) (rx, ry *big.Int)
	// DecompressY returns the y coordinate of the point with the given x
	// coordinate whose parity matches odd. It reports false if x is not the
	// abscissa of a curve point.
	DecompressY(x *big.Int, odd bool) (*big.Int, bool)
}

// Describer is implemented by backends that can name their implementation.
type Describer interface {
	Implementation() string
}
