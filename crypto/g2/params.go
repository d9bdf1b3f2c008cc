// Package g2 implements the group of points of a pairing-friendly curve's
// quadratic twist E': y^2 = x^3 + b' over F_p^2, together with the curve
// configurations (BN254, BLS12-381) that hash-to-G2 needs.
//
// Points are represented in Jacobian coordinates (X, Y, Z) where X, Y, Z are
// elements of F_p^2 and the affine point is (X/Z^2, Y/Z^3).
package g2

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/eth2030/g2map/crypto/field"
)

// ErrInvalidParams is returned by NewCurve for malformed curve
// configurations. The wrapped message names the offending field.
var ErrInvalidParams = errors.New("g2: invalid curve parameters")

// Family identifies the pairing-friendly construction a curve belongs to. It
// selects the cofactor clearing strategy.
type Family int

const (
	// FamilyOther is any curve without a specialised cofactor chain.
	FamilyOther Family = iota
	// FamilyBN is a Barreto-Naehrig curve.
	FamilyBN
	// FamilyBLS12 is a Barreto-Lynn-Scott curve of embedding degree 12.
	FamilyBLS12
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyOther:
		return "other"
	case FamilyBN:
		return "bn"
	case FamilyBLS12:
		return "bls12"
	default:
		return "unknown"
	}
}

// Polynomial is a polynomial over F_p^2 with coefficients in ascending order
// of degree: p[0] + p[1]*x + ... + p[d]*x^d.
type Polynomial []*field.Element

// Degree returns the degree of p, or -1 for the empty polynomial.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Isogeny describes a rational map from a source curve
// y^2 = x^3 + SourceA*x + SourceB onto the twist:
//
//	x' = XNum(x) / XDen(x)
//	y' = y * YNum(x) / YDen(x)
//
// Configuring an isogeny switches hashing to the constant-time mapping mode:
// the candidate point is searched on the source curve and then moved to the
// twist.
type Isogeny struct {
	XNum, XDen, YNum, YDen Polynomial
	SourceA, SourceB       *field.Element
}

// SourceRHS returns x^3 + SourceA*x + SourceB.
func (iso *Isogeny) SourceRHS(f *field.Field, x *field.Element) *field.Element {
	t := f.Add(f.Sqr(x), iso.SourceA)
	return f.Add(f.Mul(t, x), iso.SourceB)
}

// Params is the static description of a twist curve. Params are read only
// once a Curve has been built from them.
type Params struct {
	// Name identifies the configuration in logs and metrics.
	Name   string
	Family Family

	// P is the base field modulus.
	P *big.Int
	// R is the prime order of the subgroup G2.
	R *big.Int
	// Cofactor is #E'(F_p^2) / R.
	Cofactor *big.Int
	// Seed is the signed parameter x of the BN or BLS12 construction. Unused
	// for FamilyOther.
	Seed *big.Int

	// B is the twist coefficient b'.
	B *field.Element

	// FrobX and FrobY are the coefficients of the twisted Frobenius
	// psi(x, y) = (conj(x)*FrobX, conj(y)*FrobY). Required for BN and BLS12.
	FrobX, FrobY *field.Element

	// GenX and GenY are the affine coordinates of a G2 generator. Optional.
	GenX, GenY *field.Element

	// Isogeny enables the constant-time mapping mode when non-nil.
	Isogeny *Isogeny
}

func (p *Params) validate() error {
	switch {
	case p == nil:
		return errors.Wrap(ErrInvalidParams, "nil params")
	case p.P == nil:
		return errors.Wrap(ErrInvalidParams, "missing modulus")
	case p.R == nil || p.R.Sign() <= 0:
		return errors.Wrap(ErrInvalidParams, "subgroup order must be positive")
	case p.Cofactor == nil || p.Cofactor.Sign() <= 0:
		return errors.Wrap(ErrInvalidParams, "cofactor must be positive")
	case p.B == nil:
		return errors.Wrap(ErrInvalidParams, "missing twist coefficient")
	case (p.GenX == nil) != (p.GenY == nil):
		return errors.Wrap(ErrInvalidParams, "generator needs both coordinates")
	}
	for _, e := range []struct {
		name string
		v    *field.Element
	}{
		{"twist coefficient", p.B},
		{"FrobX", p.FrobX}, {"FrobY", p.FrobY},
		{"GenX", p.GenX}, {"GenY", p.GenY},
	} {
		if e.v != nil && !complete(e.v) {
			return errors.Wrapf(ErrInvalidParams, "%s has a nil component", e.name)
		}
	}
	switch p.Family {
	case FamilyBN, FamilyBLS12:
		if p.Seed == nil || p.Seed.Sign() == 0 {
			return errors.Wrapf(ErrInvalidParams, "%s curve needs a non-zero seed", p.Family)
		}
		if p.FrobX == nil || p.FrobY == nil {
			return errors.Wrapf(ErrInvalidParams, "%s curve needs Frobenius coefficients", p.Family)
		}
	case FamilyOther:
	default:
		return errors.Wrapf(ErrInvalidParams, "unknown family %d", int(p.Family))
	}
	if iso := p.Isogeny; iso != nil {
		if iso.SourceA == nil || iso.SourceB == nil {
			return errors.Wrap(ErrInvalidParams, "isogeny needs source curve coefficients")
		}
		if !complete(iso.SourceA) || !complete(iso.SourceB) {
			return errors.Wrap(ErrInvalidParams, "isogeny source coefficient has a nil component")
		}
		for _, poly := range []struct {
			name   string
			coeffs Polynomial
		}{
			{"x numerator", iso.XNum}, {"x denominator", iso.XDen},
			{"y numerator", iso.YNum}, {"y denominator", iso.YDen},
		} {
			if len(poly.coeffs) == 0 {
				return errors.Wrapf(ErrInvalidParams, "empty isogeny %s", poly.name)
			}
			for i, c := range poly.coeffs {
				if c == nil || !complete(c) {
					return errors.Wrapf(ErrInvalidParams, "isogeny %s coefficient %d is nil", poly.name, i)
				}
			}
		}
	}
	return nil
}

// complete reports whether both components of e are set.
func complete(e *field.Element) bool {
	return e.C0 != nil && e.C1 != nil
}

// clone returns a deep copy of p with every field element reduced into f.
func (p *Params) clone(f *field.Field) Params {
	elem := func(e *field.Element) *field.Element {
		if e == nil {
			return nil
		}
		return f.NewElement(e.C0, e.C1)
	}
	poly := func(src Polynomial) Polynomial {
		dst := make(Polynomial, len(src))
		for i, c := range src {
			dst[i] = elem(c)
		}
		return dst
	}
	out := Params{
		Name:     p.Name,
		Family:   p.Family,
		P:        new(big.Int).Set(p.P),
		R:        new(big.Int).Set(p.R),
		Cofactor: new(big.Int).Set(p.Cofactor),
		B:        elem(p.B),
		FrobX:    elem(p.FrobX),
		FrobY:    elem(p.FrobY),
		GenX:     elem(p.GenX),
		GenY:     elem(p.GenY),
	}
	if p.Seed != nil {
		out.Seed = new(big.Int).Set(p.Seed)
	}
	if iso := p.Isogeny; iso != nil {
		out.Isogeny = &Isogeny{
			XNum:    poly(iso.XNum),
			XDen:    poly(iso.XDen),
			YNum:    poly(iso.YNum),
			YDen:    poly(iso.YDen),
			SourceA: elem(iso.SourceA),
			SourceB: elem(iso.SourceB),
		}
	}
	return out
}

// hexInt parses a hexadecimal constant. Panics on malformed input, which can
// only come from a typo in this package.
func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("g2: invalid hex constant: " + s)
	}
	return v
}

func hexElement(c0, c1 string) *field.Element {
	return &field.Element{C0: hexInt(c0), C1: hexInt(c1)}
}
