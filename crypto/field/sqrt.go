package field

import "math/big"

// Sqrt returns a square root of a and true, or nil and false when a is not a
// square in F_p^2.
//
// This is algorithm 9 of Adj and Rodríguez-Henríquez, "Square root
// computation over even extension fields", for p = 3 mod 4:
//
//	a1 = a^((p-3)/4)
//	alpha = a1^2 * a
//	a0 = alpha^p * alpha
//	if a0 == -1: no root
//	x0 = a1 * a
//	if alpha == -1: x = i * x0
//	else:           x = (1 + alpha)^((p-1)/2) * x0
//
// The root returned is a deterministic function of a; hash outputs depend on
// it, so any change here changes every mapped point. It is not necessarily
// the root the complex method c0 = sqrt((a0 +- |a|)/2) selects.
func (f *Field) Sqrt(a *Element) (*Element, bool) {
	a1 := f.Exp(a, f.expSqrt)
	alpha := f.Mul(a1, f.Mul(a1, a))
	a0 := f.Mul(f.Conj(alpha), alpha)
	if f.isMinusOne(a0) {
		return nil, false
	}
	x0 := f.Mul(a1, a)

	var x *Element
	if f.isMinusOne(alpha) {
		// i * (c0 + c1*i) = -c1 + c0*i
		x = &Element{C0: f.neg(x0.C1), C1: new(big.Int).Set(x0.C0)}
	} else {
		b := f.Exp(f.AddBase(alpha, 1), f.expHalf)
		x = f.Mul(b, x0)
	}
	if !f.Equal(f.Sqr(x), a) {
		return nil, false
	}
	return x, true
}

func (f *Field) isMinusOne(a *Element) bool {
	return a.C0.Cmp(f.minusOne) == 0 && a.C1.Sign() == 0
}
