// Package field implements arithmetic in a prime field F_p and its quadratic
// extension F_p^2 = F_p[i] / (i^2 + 1).
//
// The modulus is a runtime parameter so one implementation serves every
// curve configuration (BN254, BLS12-381, small test curves). The only
// structural requirement is p = 3 mod 4, which makes -1 a non-residue (so
// i^2 + 1 is irreducible) and gives closed-form square roots.
//
// Like the rest of the crypto packages this code is built on math/big and is
// not constant time.
package field

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidModulus is returned by New for moduli that are not primes
	// congruent to 3 mod 4.
	ErrInvalidModulus = errors.New("field: modulus must be a prime p = 3 mod 4")
	// ErrZeroInverse is returned when inverting the additive identity.
	ErrZeroInverse = errors.New("field: inverse of zero")
)

var (
	bigOne   = big.NewInt(1)
	bigThree = big.NewInt(3)
)

// Field holds the modulus of F_p and the exponents derived from it.
// A Field is immutable and safe for concurrent use.
type Field struct {
	p       *big.Int
	byteLen int

	// expSqrt = (p-3)/4, used by the F_p^2 square root.
	expSqrt *big.Int
	// expHalf = (p-1)/2, Euler's criterion exponent.
	expHalf *big.Int
	// minusOne is p-1.
	minusOne *big.Int
}

// New returns the field with modulus p.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(bigThree) < 0 {
		return nil, ErrInvalidModulus
	}
	if p.Bit(0) != 1 || p.Bit(1) != 1 {
		return nil, errors.Wrapf(ErrInvalidModulus, "p = %d mod 4", new(big.Int).Mod(p, big.NewInt(4)))
	}
	if !p.ProbablyPrime(20) {
		return nil, errors.Wrap(ErrInvalidModulus, "p is composite")
	}
	mod := new(big.Int).Set(p)
	f := &Field{
		p:        mod,
		byteLen:  (mod.BitLen() + 7) / 8,
		minusOne: new(big.Int).Sub(mod, bigOne),
	}
	f.expSqrt = new(big.Int).Rsh(new(big.Int).Sub(mod, bigThree), 2)
	f.expHalf = new(big.Int).Rsh(f.minusOne, 1)
	return f, nil
}

// MustNew is like New but panics on an invalid modulus. It is meant for
// package-level curve constants.
func MustNew(p *big.Int) *Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int { return new(big.Int).Set(f.p) }

// ByteLen returns the length in bytes of a canonical encoding of an F_p
// element, ceil(bitlen(p) / 8).
func (f *Field) ByteLen() int { return f.byteLen }

// Reduce returns x mod p as a fresh value in [0, p).
func (f *Field) Reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, f.p)
}

// FromBytes interprets b as a big-endian integer and reduces it into F_p.
func (f *Field) FromBytes(b []byte) *big.Int {
	return f.Reduce(new(big.Int).SetBytes(b))
}

// --- base field helpers ---

func (f *Field) add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.p)
}

func (f *Field) sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.p)
}

func (f *Field) mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.p)
}

func (f *Field) sqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return r.Mod(r, f.p)
}

func (f *Field) neg(a *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, f.p)
}

// inv returns a^(-1) mod p, or nil for a = 0.
func (f *Field) inv(a *big.Int) *big.Int {
	if new(big.Int).Mod(a, f.p).Sign() == 0 {
		return nil
	}
	return new(big.Int).ModInverse(a, f.p)
}

// isSquare reports whether a is a quadratic residue (zero included).
func (f *Field) isSquare(a *big.Int) bool {
	if new(big.Int).Mod(a, f.p).Sign() == 0 {
		return true
	}
	return new(big.Int).Exp(a, f.expHalf, f.p).Cmp(bigOne) == 0
}
