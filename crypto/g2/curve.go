package g2

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/eth2030/g2map/crypto/field"
)

// Curve is a validated twist configuration together with its field. A Curve
// is immutable and safe for concurrent use.
type Curve struct {
	params Params
	f      *field.Field
}

// NewCurve validates params and returns the curve they describe. The curve
// keeps a deep copy of params.
func NewCurve(params *Params) (*Curve, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	f, err := field.New(params.P)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidParams, err.Error())
	}
	c := &Curve{params: params.clone(f), f: f}
	if c.params.GenX != nil {
		gen := &Point{X: c.params.GenX, Y: c.params.GenY, Z: f.One(), Norm: true}
		if !c.IsOnCurve(gen) {
			return nil, errors.Wrap(ErrInvalidParams, "generator is not on the curve")
		}
	}
	return c, nil
}

// MustCurve is like NewCurve but panics on error. Used for the shipped
// configurations.
func MustCurve(params *Params) *Curve {
	c, err := NewCurve(params)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the configuration name.
func (c *Curve) Name() string { return c.params.Name }

// Family returns the curve family.
func (c *Curve) Family() Family { return c.params.Family }

// Field returns the field the curve is defined over.
func (c *Curve) Field() *field.Field { return c.f }

// B returns the twist coefficient b'.
func (c *Curve) B() *field.Element { return c.params.B.Copy() }

// Order returns the prime order r of G2.
func (c *Curve) Order() *big.Int { return new(big.Int).Set(c.params.R) }

// Cofactor returns #E'(F_p^2) / r.
func (c *Curve) Cofactor() *big.Int { return new(big.Int).Set(c.params.Cofactor) }

// Seed returns the signed construction parameter x, or nil for FamilyOther
// curves configured without one.
func (c *Curve) Seed() *big.Int {
	if c.params.Seed == nil {
		return nil
	}
	return new(big.Int).Set(c.params.Seed)
}

// Isogeny returns the configured isogeny, or nil when constant-time mapping
// is disabled. The descriptor must not be modified.
func (c *Curve) Isogeny() *Isogeny { return c.params.Isogeny }

// ConstantTime reports whether the curve is configured for the
// constant-time (isogeny based) mapping mode.
func (c *Curve) ConstantTime() bool { return c.params.Isogeny != nil }

// RHS returns x^3 + b', the right-hand side of the curve equation.
func (c *Curve) RHS(x *field.Element) *field.Element {
	f := c.f
	return f.Add(f.Mul(f.Sqr(x), x), c.params.B)
}
