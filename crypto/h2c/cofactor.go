package h2c

import (
	"github.com/eth2030/g2map/crypto/g2"
	"github.com/eth2030/g2map/metrics"
)

// ClearCofactorBN maps a point of a BN twist into G2 with the chain of
// Fuentes-Castañeda, Knapp and Rodríguez-Henríquez:
//
//	[x]P + psi([3x]P) + psi^2([x]P) + psi^3(P)
//
// where x is the curve seed.
func ClearCofactorBN(c *g2.Curve, p *g2.Point) *g2.Point {
	t0 := c.ScalarMul(p, c.Seed())
	t1 := c.Add(c.Double(t0), t0)
	t1 = c.Frobenius(c.Normalize(t1), 1)

	t2 := c.Frobenius(c.Normalize(p), 3)
	t2 = c.Add(t2, t0)
	t2 = c.Add(t2, t1)
	t2 = c.Add(t2, c.Frobenius(c.Normalize(t0), 2))
	return c.Normalize(t2)
}

// ClearCofactorBLS12 maps a point of a BLS12 twist into G2 with the chain of
// Budroni and Pintore:
//
//	[x^2 - x - 1]P + psi([x - 1]P) + psi^2([2]P)
//
// where x is the signed curve seed. For BLS12-381 this is multiplication by
// h_eff of RFC 9380.
func ClearCofactorBLS12(c *g2.Curve, p *g2.Point) *g2.Point {
	x := c.Seed()
	t0 := c.ScalarMul(p, x)
	t1 := c.ScalarMul(t0, x)

	t2 := c.Sub(c.Sub(t1, t0), p)
	t3 := c.Frobenius(c.Normalize(c.Sub(t0, p)), 1)
	t2 = c.Add(t2, t3)
	t3 = c.Frobenius(c.Normalize(c.Double(p)), 2)
	t2 = c.Add(t2, t3)
	return c.Normalize(t2)
}

// ClearCofactorGeneric multiplies p by the full cofactor. Cofactors that fit
// a machine word use the single-word ladder.
func ClearCofactorGeneric(c *g2.Curve, p *g2.Point) *g2.Point {
	h := c.Cofactor()
	if h.BitLen() < 64 {
		return c.Normalize(c.ScalarMulWord(p, h.Uint64()))
	}
	return c.Normalize(c.ScalarMul(p, h))
}

// ClearCofactor dispatches on the curve family.
func ClearCofactor(c *g2.Curve, p *g2.Point) *g2.Point {
	family := c.Family()
	metrics.CofactorCounter(family.String()).Inc()
	switch family {
	case g2.FamilyBN:
		return ClearCofactorBN(c, p)
	case g2.FamilyBLS12:
		return ClearCofactorBLS12(c, p)
	default:
		return ClearCofactorGeneric(c, p)
	}
}
