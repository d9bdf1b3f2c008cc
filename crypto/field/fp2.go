package field

// F_p^2 = F_p[i] / (i^2 + 1).
//
// Elements are represented as (c0 + c1*i) with c0, c1 in [0, p). All
// operations allocate their result and leave the inputs untouched, so an
// Element can be shared freely once constructed.

import (
	"fmt"
	"math/big"
)

// Element is an element c0 + c1*i of F_p^2.
type Element struct {
	C0, C1 *big.Int
}

// NewElement returns c0 + c1*i with both components reduced mod p.
func (f *Field) NewElement(c0, c1 *big.Int) *Element {
	return &Element{C0: f.Reduce(c0), C1: f.Reduce(c1)}
}

// Zero returns the additive identity.
func (f *Field) Zero() *Element {
	return &Element{C0: new(big.Int), C1: new(big.Int)}
}

// One returns the multiplicative identity.
func (f *Field) One() *Element {
	return &Element{C0: big.NewInt(1), C1: new(big.Int)}
}

// IsZero reports whether e is the additive identity. e must be reduced.
func (e *Element) IsZero() bool {
	return e.C0.Sign() == 0 && e.C1.Sign() == 0
}

// IsOne reports whether e is the multiplicative identity. e must be reduced.
func (e *Element) IsOne() bool {
	return e.C0.Cmp(bigOne) == 0 && e.C1.Sign() == 0
}

// Copy returns a deep copy of e.
func (e *Element) Copy() *Element {
	return &Element{C0: new(big.Int).Set(e.C0), C1: new(big.Int).Set(e.C1)}
}

// String formats e as (0x<c0>, 0x<c1>).
func (e *Element) String() string {
	return fmt.Sprintf("(%#x, %#x)", e.C0, e.C1)
}

// Equal reports whether a and b represent the same element.
func (f *Field) Equal(a, b *Element) bool {
	return f.Reduce(a.C0).Cmp(f.Reduce(b.C0)) == 0 && f.Reduce(a.C1).Cmp(f.Reduce(b.C1)) == 0
}

// Add returns a + b.
func (f *Field) Add(a, b *Element) *Element {
	return &Element{C0: f.add(a.C0, b.C0), C1: f.add(a.C1, b.C1)}
}

// Sub returns a - b.
func (f *Field) Sub(a, b *Element) *Element {
	return &Element{C0: f.sub(a.C0, b.C0), C1: f.sub(a.C1, b.C1)}
}

// Double returns 2a.
func (f *Field) Double(a *Element) *Element {
	return f.Add(a, a)
}

// Neg returns -a.
func (f *Field) Neg(a *Element) *Element {
	return &Element{C0: f.neg(a.C0), C1: f.neg(a.C1)}
}

// Mul returns a * b.
// (a0 + a1*i)(b0 + b1*i) = (a0*b0 - a1*b1) + ((a0+a1)(b0+b1) - a0*b0 - a1*b1)*i
func (f *Field) Mul(a, b *Element) *Element {
	v0 := f.mul(a.C0, b.C0)
	v1 := f.mul(a.C1, b.C1)
	return &Element{
		C0: f.sub(v0, v1),
		C1: f.sub(f.mul(f.add(a.C0, a.C1), f.add(b.C0, b.C1)), f.add(v0, v1)),
	}
}

// Sqr returns a^2 = (a0+a1)(a0-a1) + 2*a0*a1*i.
func (f *Field) Sqr(a *Element) *Element {
	ab := f.mul(a.C0, a.C1)
	return &Element{
		C0: f.mul(f.add(a.C0, a.C1), f.sub(a.C0, a.C1)),
		C1: f.add(ab, ab),
	}
}

// MulBase returns a * s for s in F_p.
func (f *Field) MulBase(a *Element, s *big.Int) *Element {
	return &Element{C0: f.mul(a.C0, s), C1: f.mul(a.C1, s)}
}

// AddBase returns a + d where d is a small integer added to the F_p
// component.
func (f *Field) AddBase(a *Element, d uint64) *Element {
	return &Element{
		C0: f.add(a.C0, new(big.Int).SetUint64(d)),
		C1: new(big.Int).Set(a.C1),
	}
}

// Conj returns the conjugate c0 - c1*i, which is also a^p.
func (f *Field) Conj(a *Element) *Element {
	return &Element{C0: new(big.Int).Set(a.C0), C1: f.neg(a.C1)}
}

// Frobenius returns a^(p^power). Since a^p is the conjugate, only the
// parity of power matters.
func (f *Field) Frobenius(a *Element, power int) *Element {
	if power%2 == 0 {
		return a.Copy()
	}
	return f.Conj(a)
}

// Norm returns a * conj(a) = c0^2 + c1^2 in F_p.
func (f *Field) Norm(a *Element) *big.Int {
	return f.add(f.sqr(a.C0), f.sqr(a.C1))
}

// Inv returns a^(-1) = conj(a) / norm(a).
func (f *Field) Inv(a *Element) (*Element, error) {
	t := f.inv(f.Norm(a))
	if t == nil {
		return nil, ErrZeroInverse
	}
	return &Element{
		C0: f.mul(a.C0, t),
		C1: f.mul(f.neg(a.C1), t),
	}, nil
}

// Exp returns a^e for e >= 0 by left-to-right square and multiply.
func (f *Field) Exp(a *Element, e *big.Int) *Element {
	r := f.One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		r = f.Sqr(r)
		if e.Bit(i) == 1 {
			r = f.Mul(r, a)
		}
	}
	return r
}

// IsSquare reports whether a is a square in F_p^2, which holds exactly when
// its norm is a square in F_p.
func (f *Field) IsSquare(a *Element) bool {
	return f.isSquare(f.Norm(a))
}
