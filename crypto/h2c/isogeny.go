package h2c

import "github.com/eth2030/g2map/crypto/g2"

// MapIsogeny carries p from the curve's isogeny source curve onto the twist.
// With x' = XNum(x)/XDen(x) and y' = y*YNum(x)/YDen(x), the result is built
// in Jacobian coordinates without a field inversion:
//
//	Z = YDen(x) * XDen(x)
//	X = XNum(x) * YDen(x) * Z
//	Y = y * YNum(x) * XDen(x) * Z^2
//
// The output is not normalised. Without a configured isogeny p is returned
// as a copy. A non-normalised input is normalised first.
func MapIsogeny(c *g2.Curve, p *g2.Point) *g2.Point {
	iso := c.Isogeny()
	if iso == nil || p.IsInfinity() {
		return p.Copy()
	}
	if !p.Norm {
		p = c.Normalize(p)
	}
	f := c.Field()

	t0 := EvalPoly(f, p.X, iso.XNum)
	t1 := EvalPoly(f, p.X, iso.YNum)
	t2 := EvalPoly(f, p.X, iso.YDen)
	t3 := EvalPoly(f, p.X, iso.XDen)

	z := f.Mul(t2, t3)
	y := f.Mul(f.Mul(f.Mul(p.Y, t1), t3), f.Sqr(z))
	x := f.Mul(f.Mul(t0, t2), z)
	return &g2.Point{X: x, Y: y, Z: z}
}
