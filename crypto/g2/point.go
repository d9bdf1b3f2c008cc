package g2

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/eth2030/g2map/crypto/field"
)

// ErrNotOnCurve is returned by FromAffine for coordinates that do not
// satisfy the curve equation.
var ErrNotOnCurve = errors.New("g2: point is not on the curve")

// Point is a point on the twist in Jacobian coordinates. Norm records that Z
// is one, i.e. (X, Y) are the affine coordinates. The point at infinity has
// Z = 0.
type Point struct {
	X, Y, Z *field.Element
	Norm    bool
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.Z.IsZero()
}

// Copy returns a deep copy of p.
func (p *Point) Copy() *Point {
	return &Point{X: p.X.Copy(), Y: p.Y.Copy(), Z: p.Z.Copy(), Norm: p.Norm}
}

// String formats p as its Jacobian coordinates.
func (p *Point) String() string {
	if p.IsInfinity() {
		return "infinity"
	}
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}

// Infinity returns the point at infinity.
func (c *Curve) Infinity() *Point {
	return &Point{X: c.f.One(), Y: c.f.One(), Z: c.f.Zero()}
}

// Generator returns the configured G2 generator, or nil if the curve has
// none.
func (c *Curve) Generator() *Point {
	if c.params.GenX == nil {
		return nil
	}
	return &Point{X: c.params.GenX.Copy(), Y: c.params.GenY.Copy(), Z: c.f.One(), Norm: true}
}

// FromAffine returns the normalised point (x, y) after checking the curve
// equation.
func (c *Curve) FromAffine(x, y *field.Element) (*Point, error) {
	p := &Point{
		X:    c.f.NewElement(x.C0, x.C1),
		Y:    c.f.NewElement(y.C0, y.C1),
		Z:    c.f.One(),
		Norm: true,
	}
	if !c.IsOnCurve(p) {
		return nil, ErrNotOnCurve
	}
	return p, nil
}

// Affine returns the affine coordinates of p. The point at infinity has no
// affine representation and yields an error.
func (c *Curve) Affine(p *Point) (x, y *field.Element, err error) {
	if p.IsInfinity() {
		return nil, nil, errors.New("g2: point at infinity has no affine coordinates")
	}
	n := c.Normalize(p)
	return n.X, n.Y, nil
}

// Normalize returns p with Z = 1. The point at infinity is returned
// unchanged.
func (c *Curve) Normalize(p *Point) *Point {
	if p.Norm {
		return p.Copy()
	}
	f := c.f
	zInv, err := f.Inv(p.Z)
	if err != nil {
		// Z = 0 is the point at infinity.
		return c.Infinity()
	}
	zInv2 := f.Sqr(zInv)
	zInv3 := f.Mul(zInv2, zInv)
	return &Point{
		X:    f.Mul(p.X, zInv2),
		Y:    f.Mul(p.Y, zInv3),
		Z:    f.One(),
		Norm: true,
	}
}

// IsOnCurve checks Y^2 = X^3 + b'*Z^6, which is the curve equation in
// Jacobian coordinates. The point at infinity is on the curve.
func (c *Curve) IsOnCurve(p *Point) bool {
	if p.IsInfinity() {
		return true
	}
	f := c.f
	z2 := f.Sqr(p.Z)
	z6 := f.Mul(f.Sqr(z2), z2)
	lhs := f.Sqr(p.Y)
	rhs := f.Add(f.Mul(f.Sqr(p.X), p.X), f.Mul(c.params.B, z6))
	return f.Equal(lhs, rhs)
}

// InSubgroup reports whether [r]p is the point at infinity.
func (c *Curve) InSubgroup(p *Point) bool {
	return c.ScalarMul(p, c.params.R).IsInfinity()
}

// Equal reports whether a and b are the same point, independently of their
// Jacobian representation.
func (c *Curve) Equal(a, b *Point) bool {
	if a.IsInfinity() || b.IsInfinity() {
		return a.IsInfinity() && b.IsInfinity()
	}
	f := c.f
	az2 := f.Sqr(a.Z)
	bz2 := f.Sqr(b.Z)
	if !f.Equal(f.Mul(a.X, bz2), f.Mul(b.X, az2)) {
		return false
	}
	return f.Equal(f.Mul(a.Y, f.Mul(bz2, b.Z)), f.Mul(b.Y, f.Mul(az2, a.Z)))
}

// Add returns a + b (add-2007-bl).
func (c *Curve) Add(a, b *Point) *Point {
	if a.IsInfinity() {
		return b.Copy()
	}
	if b.IsInfinity() {
		return a.Copy()
	}
	f := c.f

	z1sq := f.Sqr(a.Z)
	z2sq := f.Sqr(b.Z)
	u1 := f.Mul(a.X, z2sq)
	u2 := f.Mul(b.X, z1sq)
	s1 := f.Mul(a.Y, f.Mul(b.Z, z2sq))
	s2 := f.Mul(b.Y, f.Mul(a.Z, z1sq))

	if f.Equal(u1, u2) {
		if f.Equal(s1, s2) {
			return c.Double(a)
		}
		return c.Infinity()
	}

	h := f.Sub(u2, u1)
	i := f.Sqr(f.Double(h))
	j := f.Mul(h, i)
	r := f.Double(f.Sub(s2, s1))
	v := f.Mul(u1, i)

	x3 := f.Sub(f.Sub(f.Sqr(r), j), f.Double(v))
	y3 := f.Sub(f.Mul(r, f.Sub(v, x3)), f.Double(f.Mul(s1, j)))
	z3 := f.Mul(f.Sub(f.Sub(f.Sqr(f.Add(a.Z, b.Z)), z1sq), z2sq), h)

	return &Point{X: x3, Y: y3, Z: z3}
}

// Double returns 2a (dbl-2009-l, valid for curves with a = 0).
func (c *Curve) Double(a *Point) *Point {
	if a.IsInfinity() {
		return c.Infinity()
	}
	f := c.f

	A := f.Sqr(a.X)
	B := f.Sqr(a.Y)
	C := f.Sqr(B)

	D := f.Double(f.Sub(f.Sub(f.Sqr(f.Add(a.X, B)), A), C))
	E := f.Add(f.Double(A), A)

	x3 := f.Sub(f.Sqr(E), f.Double(D))
	eightC := f.Double(f.Double(f.Double(C)))
	y3 := f.Sub(f.Mul(E, f.Sub(D, x3)), eightC)
	z3 := f.Mul(f.Double(a.Y), a.Z)

	return &Point{X: x3, Y: y3, Z: z3}
}

// Neg returns -p.
func (c *Curve) Neg(p *Point) *Point {
	if p.IsInfinity() {
		return c.Infinity()
	}
	return &Point{X: p.X.Copy(), Y: c.f.Neg(p.Y), Z: p.Z.Copy(), Norm: p.Norm}
}

// Sub returns a - b.
func (c *Curve) Sub(a, b *Point) *Point {
	return c.Add(a, c.Neg(b))
}

// ScalarMul returns [k]p for a signed k by double-and-add. Unlike
// multiplication inside G2, k is not reduced modulo r: p may lie outside the
// subgroup, as it does before cofactor clearing.
func (c *Curve) ScalarMul(p *Point, k *big.Int) *Point {
	if k.Sign() < 0 {
		return c.ScalarMul(c.Neg(p), new(big.Int).Neg(k))
	}
	r := c.Infinity()
	if p.IsInfinity() {
		return r
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = c.Double(r)
		if k.Bit(i) == 1 {
			r = c.Add(r, p)
		}
	}
	return r
}

// ScalarMulWord returns [k]p for a scalar that fits one machine word.
func (c *Curve) ScalarMulWord(p *Point, k uint64) *Point {
	r := c.Infinity()
	if p.IsInfinity() {
		return r
	}
	for i := bits.Len64(k) - 1; i >= 0; i-- {
		r = c.Double(r)
		if (k>>uint(i))&1 == 1 {
			r = c.Add(r, p)
		}
	}
	return r
}

// Frobenius applies the twisted Frobenius endomorphism psi power times:
//
//	psi(x, y) = (conj(x)*FrobX, conj(y)*FrobY)
//
// Conjugation is a field automorphism, so the map is applied to Jacobian
// coordinates directly with Z replaced by conj(Z). Curves without Frobenius
// coefficients return p unchanged.
func (c *Curve) Frobenius(p *Point, power int) *Point {
	if c.params.FrobX == nil || p.IsInfinity() {
		return p.Copy()
	}
	f := c.f
	q := p.Copy()
	for i := 0; i < power; i++ {
		q = &Point{
			X:    f.Mul(f.Conj(q.X), c.params.FrobX),
			Y:    f.Mul(f.Conj(q.Y), c.params.FrobY),
			Z:    f.Conj(q.Z),
			Norm: q.Norm,
		}
	}
	return q
}
