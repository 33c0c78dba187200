// Package scalar provides an arbitrary-precision, non-negative integer with
// fixed-width big-endian encoding, used for private keys, nonces and
// signature components.
//
// An Int owns its backing storage and may be wiped with Free once it is no
// longer needed. A View borrows an integer owned elsewhere (for example the
// order of a shared curve context) and has no Free method, so it can never
// release memory it does not own. Every arithmetic operation returns a newly
// allocated Int; operands are never modified.
package scalar

import (
	"fmt"
	"math/big"
	"runtime"

	"github.com/athanorlabs/go-ecc/types"
)

// Int is an owning arbitrary-precision non-negative integer.
type Int struct {
	v     big.Int
	freed bool
}

// FromBytes interprets b as a big-endian unsigned integer.
func FromBytes(b []byte) *Int {
	s := new(Int)
	s.v.SetBytes(b)
	return s
}

// FromBig copies v into a new Int. v must not be negative.
func FromBig(v *big.Int) (*Int, error) {
	if v.Sign() < 0 {
		return nil, types.NewError(types.ErrUnderflow, "scalar: negative value")
	}
	s := new(Int)
	s.v.Set(v)
	return s, nil
}

// FromUint64 returns a new Int holding v.
func FromUint64(v uint64) *Int {
	s := new(Int)
	s.v.SetUint64(v)
	return s
}

func (s *Int) val() *big.Int {
	if s == nil {
		panic("scalar: nil Int")
	}
	if s.freed {
		panic("scalar: use of freed Int")
	}
	return &s.v
}

func wrap(v *big.Int) *Int {
	s := new(Int)
	s.v.Set(v)
	return s
}

// Big returns a copy of the value as a *big.Int.
func (s *Int) Big() *big.Int {
	return new(big.Int).Set(s.val())
}

// View borrows the value. The view is only valid until s is freed.
func (s *Int) View() View {
	return View{v: s.val()}
}

// Clone returns an independent copy of s.
func (s *Int) Clone() *Int {
	return wrap(s.val())
}

// Bytes returns the minimal big-endian encoding. Zero encodes as an empty
// slice.
func (s *Int) Bytes() []byte {
	return s.val().Bytes()
}

// BytesWidth returns the big-endian encoding left-padded with zeros to
// exactly width bytes.
func (s *Int) BytesWidth(width int) ([]byte, error) {
	v := s.val()
	if (v.BitLen()+7)/8 > width {
		return nil, types.NewError(types.ErrEncodingTooShort,
			fmt.Sprintf("scalar: value needs %d bytes, width is %d", (v.BitLen()+7)/8, width))
	}
	out := make([]byte, width)
	v.FillBytes(out)
	return out, nil
}

// BitLen returns the length of the value in bits. BitLen of zero is 0.
func (s *Int) BitLen() int {
	return s.val().BitLen()
}

// Cmp compares s and o and returns -1, 0 or +1.
func (s *Int) Cmp(o *Int) int {
	return s.val().Cmp(o.val())
}

// CmpView compares s against a borrowed value.
func (s *Int) CmpView(o View) int {
	return s.val().Cmp(o.big())
}

// Equal reports whether s == o.
func (s *Int) Equal(o *Int) bool {
	return s.Cmp(o) == 0
}

// IsZero reports whether s == 0.
func (s *Int) IsZero() bool {
	return s.val().Sign() == 0
}

// IsOdd reports whether the lowest bit of s is set.
func (s *Int) IsOdd() bool {
	return s.val().Bit(0) == 1
}

// Add returns s + o.
func (s *Int) Add(o *Int) *Int {
	r := new(Int)
	r.v.Add(s.val(), o.val())
	return r
}

// AddView returns s + o.
func (s *Int) AddView(o View) *Int {
	r := new(Int)
	r.v.Add(s.val(), o.big())
	return r
}

// Sub returns s - o. It fails with ErrUnderflow if o > s.
func (s *Int) Sub(o *Int) (*Int, error) {
	if s.Cmp(o) < 0 {
		return nil, types.NewError(types.ErrUnderflow, "scalar: subtraction underflows")
	}
	r := new(Int)
	r.v.Sub(s.val(), o.val())
	return r, nil
}

// Mul returns s * o.
func (s *Int) Mul(o *Int) *Int {
	r := new(Int)
	r.v.Mul(s.val(), o.val())
	return r
}

// Div returns floor(s / o).
func (s *Int) Div(o *Int) (*Int, error) {
	return s.DivView(o.View())
}

// DivView returns floor(s / o).
func (s *Int) DivView(o View) (*Int, error) {
	if o.IsZero() {
		return nil, types.NewError(types.ErrDivisionByZero, "scalar: division by zero")
	}
	r := new(Int)
	r.v.Quo(s.val(), o.big())
	return r, nil
}

// Mod returns s mod m.
func (s *Int) Mod(m View) (*Int, error) {
	if m.IsZero() {
		return nil, types.NewError(types.ErrDivisionByZero, "scalar: modulus is zero")
	}
	r := new(Int)
	r.v.Mod(s.val(), m.big())
	return r, nil
}

// MulMod returns s * o mod m.
func (s *Int) MulMod(o *Int, m View) (*Int, error) {
	p := s.Mul(o)
	defer p.Free()
	return p.Mod(m)
}

// NegMod returns -s mod m, the value in [0, m) congruent to -s.
func (s *Int) NegMod(m View) (*Int, error) {
	r, err := s.Mod(m)
	if err != nil {
		return nil, err
	}
	if r.v.Sign() != 0 {
		r.v.Sub(m.big(), &r.v)
	}
	return r, nil
}

// InverseMod returns s⁻¹ mod m. It fails with ErrDivisionByZero if s and m
// are not coprime, which includes s ≡ 0.
func (s *Int) InverseMod(m View) (*Int, error) {
	if m.IsZero() {
		return nil, types.NewError(types.ErrDivisionByZero, "scalar: modulus is zero")
	}
	r := new(Int)
	if r.v.ModInverse(s.val(), m.big()) == nil {
		return nil, types.NewError(types.ErrDivisionByZero, "scalar: value is not invertible")
	}
	return r, nil
}

// String returns the decimal representation. Avoid calling it on secrets.
func (s *Int) String() string {
	if s == nil || s.freed {
		return "<nil>"
	}
	return s.v.String()
}

// Free zeroizes the value. Any further use of s panics. Free is a no-op on
// nil or already freed values.
func (s *Int) Free() {
	if s == nil || s.freed {
		return
	}
	words := s.v.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	s.v.SetInt64(0)
	s.freed = true
}
