package scalar

import "math/big"

// View is a read-only borrow of an integer owned elsewhere. It has no Free
// method: the owner controls the lifetime of the storage.
type View struct {
	v *big.Int
}

// Borrow returns a View of v. The caller must not modify v while the view
// is in use, and v must not be negative.
func Borrow(v *big.Int) View {
	return View{v: v}
}

func (w View) big() *big.Int {
	if w.v == nil {
		return new(big.Int)
	}
	return w.v
}

// Clone returns an owning copy of the borrowed value.
func (w View) Clone() *Int {
	return wrap(w.big())
}

// Big returns a copy of the value as a *big.Int.
func (w View) Big() *big.Int {
	return new(big.Int).Set(w.big())
}

// BitLen returns the length of the value in bits.
func (w View) BitLen() int {
	return w.big().BitLen()
}

// IsZero reports whether the borrowed value is zero.
func (w View) IsZero() bool {
	return w.big().Sign() == 0
}

// Cmp compares the borrowed value with o.
func (w View) Cmp(o *Int) int {
	return w.big().Cmp(o.val())
}

// Bytes returns the minimal big-endian encoding.
func (w View) Bytes() []byte {
	return w.big().Bytes()
}

// String returns the decimal representation.
func (w View) String() string {
	return w.big().String()
}
