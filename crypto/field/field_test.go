package field

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bn254P, _  = new(big.Int).SetString("30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47", 16)
	bls381P, _ = new(big.Int).SetString("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)
)

func elem(c0, c1 int64) *Element {
	return &Element{C0: big.NewInt(c0), C1: big.NewInt(c1)}
}

func randElement(f *Field, rng *rand.Rand) *Element {
	return f.NewElement(new(big.Int).Rand(rng, f.p), new(big.Int).Rand(rng, f.p))
}

func TestNew(t *testing.T) {
	tests := []struct {
		p  *big.Int
		ok bool
	}{
		{nil, false},
		{big.NewInt(2), false},
		{big.NewInt(5), false},  // 1 mod 4
		{big.NewInt(15), false}, // composite
		{big.NewInt(3), true},
		{big.NewInt(211), true},
		{bn254P, true},
		{bls381P, true},
	}
	for _, tt := range tests {
		f, err := New(tt.p)
		if !tt.ok {
			require.Error(t, err, "p=%v", tt.p)
			assert.True(t, errors.Is(err, ErrInvalidModulus))
			continue
		}
		require.NoError(t, err, "p=%v", tt.p)
		assert.Equal(t, 0, f.Modulus().Cmp(tt.p))
	}
	assert.Panics(t, func() { MustNew(big.NewInt(13)) })
}

func TestByteLen(t *testing.T) {
	assert.Equal(t, 1, MustNew(big.NewInt(211)).ByteLen())
	assert.Equal(t, 32, MustNew(bn254P).ByteLen())
	assert.Equal(t, 48, MustNew(bls381P).ByteLen())
}

func TestFromBytes(t *testing.T) {
	f := MustNew(big.NewInt(211))
	assert.Equal(t, int64(0xff-211), f.FromBytes([]byte{0xff}).Int64())
	assert.Equal(t, int64(0), f.FromBytes(nil).Int64())
}

func TestArithmetic(t *testing.T) {
	f := MustNew(bls381P)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 32; i++ {
		a, b := randElement(f, rng), randElement(f, rng)

		assert.True(t, f.Equal(f.Sqr(a), f.Mul(a, a)))
		assert.True(t, f.Equal(f.Sub(f.Add(a, b), b), a))
		assert.True(t, f.Equal(f.Add(a, f.Neg(a)), f.Zero()))
		assert.True(t, f.Equal(f.Double(a), f.Add(a, a)))
		assert.True(t, f.Equal(f.Mul(a, b), f.Mul(b, a)))

		// a^p is the conjugate.
		assert.True(t, f.Equal(f.Exp(a, bls381P), f.Conj(a)))
		assert.True(t, f.Equal(f.Frobenius(a, 1), f.Conj(a)))
		assert.True(t, f.Equal(f.Frobenius(a, 2), a))

		n := f.Norm(a)
		assert.True(t, f.Equal(f.Mul(a, f.Conj(a)), &Element{C0: n, C1: new(big.Int)}))

		s := f.Reduce(big.NewInt(int64(i) + 2))
		assert.True(t, f.Equal(f.MulBase(a, s), f.Mul(a, &Element{C0: s, C1: new(big.Int)})))
		assert.True(t, f.Equal(f.AddBase(a, 7), f.Add(a, elem(7, 0))))
	}
}

func TestMulByI(t *testing.T) {
	f := MustNew(big.NewInt(211))
	// i^2 = -1
	assert.True(t, f.Equal(f.Sqr(elem(0, 1)), elem(210, 0)))
}

func TestInv(t *testing.T) {
	f := MustNew(big.NewInt(211))
	inv, err := f.Inv(elem(3, 5))
	require.NoError(t, err)
	assert.True(t, f.Equal(inv, elem(118, 155)))
	assert.True(t, f.Mul(inv, elem(3, 5)).IsOne())

	_, err = f.Inv(f.Zero())
	assert.True(t, errors.Is(err, ErrZeroInverse))

	g := MustNew(bn254P)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 16; i++ {
		a := randElement(g, rng)
		inv, err := g.Inv(a)
		require.NoError(t, err)
		assert.True(t, g.Mul(a, inv).IsOne())
	}
}

func TestSqrtVectors(t *testing.T) {
	f := MustNew(big.NewInt(211))
	tests := []struct {
		a, want *Element
	}{
		{elem(2, 0), elem(0, 118)},
		{elem(210, 0), elem(0, 210)}, // alpha = -1 branch
		{elem(3, 5), elem(197, 143)},
		{elem(0, 1), elem(152, 59)},
		{elem(0, 0), elem(0, 0)},
	}
	for _, tt := range tests {
		got, ok := f.Sqrt(tt.a)
		require.True(t, ok, "a=%v", tt.a)
		assert.True(t, f.Equal(got, tt.want), "sqrt(%v) = %v, want %v", tt.a, got, tt.want)
	}
}

func TestSqrtExhaustive(t *testing.T) {
	f := MustNew(big.NewInt(211))
	squares := 0
	for c0 := int64(0); c0 < 211; c0++ {
		for c1 := int64(0); c1 < 211; c1++ {
			a := elem(c0, c1)
			r, ok := f.Sqrt(a)
			require.Equal(t, f.IsSquare(a), ok, "a=%v", a)
			if ok {
				squares++
				require.True(t, f.Equal(f.Sqr(r), a))
			}
		}
	}
	// (p^2 - 1) / 2 non-zero squares plus zero.
	assert.Equal(t, (211*211-1)/2+1, squares)
}

func TestSqrtLarge(t *testing.T) {
	f := MustNew(bls381P)
	want, _ := new(big.Int).SetString("ca2f5e1c98166837ab7e0db6ba8acdad404902d6dde8c027741f672f58c729841dccd9fcb7bf41629ddf60824381299", 16)
	r, ok := f.Sqrt(elem(2, 0))
	require.True(t, ok)
	assert.True(t, f.Equal(r, &Element{C0: new(big.Int), C1: want}))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 16; i++ {
		a := randElement(f, rng)
		sq := f.Sqr(a)
		r, ok := f.Sqrt(sq)
		require.True(t, ok)
		assert.True(t, f.Equal(r, a) || f.Equal(r, f.Neg(a)))
	}
}
