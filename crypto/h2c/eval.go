package h2c

import "github.com/eth2030/g2map/crypto/field"

// EvalPoly evaluates coeffs[0] + coeffs[1]*x + ... + coeffs[d]*x^d at x
// using Horner's method. The empty polynomial evaluates to zero.
func EvalPoly(f *field.Field, x *field.Element, coeffs []*field.Element) *field.Element {
	if len(coeffs) == 0 {
		return f.Zero()
	}
	result := coeffs[len(coeffs)-1].Copy()
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = f.Mul(result, x)
		result = f.Add(result, coeffs[i])
	}
	return result
}
