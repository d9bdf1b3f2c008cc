package h2c

import (
	"fmt"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eth2030/g2map/crypto/g2"
)

func toGnarkBN254(t *testing.T, c *g2.Curve, p *g2.Point) bn254.G2Affine {
	t.Helper()
	x, y, err := c.Affine(p)
	require.NoError(t, err)
	var q bn254.G2Affine
	q.X.A0.SetBigInt(x.C0)
	q.X.A1.SetBigInt(x.C1)
	q.Y.A0.SetBigInt(y.C0)
	q.Y.A1.SetBigInt(y.C1)
	return q
}

func toGnarkBLS12381(t *testing.T, c *g2.Curve, p *g2.Point) bls12381.G2Affine {
	t.Helper()
	x, y, err := c.Affine(p)
	require.NoError(t, err)
	var q bls12381.G2Affine
	q.X.A0.SetBigInt(x.C0)
	q.X.A1.SetBigInt(x.C1)
	q.Y.A0.SetBigInt(y.C0)
	q.Y.A1.SetBigInt(y.C1)
	return q
}

// Outputs are checked against gnark-crypto's independent G2 implementation.
func TestGnarkOracleBN254(t *testing.T) {
	c := g2.BN254
	m := newMapper(t, c, DigestSHA256)
	for i := 0; i < 8; i++ {
		msg := []byte(fmt.Sprintf("gnark oracle %d", i))

		raw, _, err := m.mapToCurve(msg)
		require.NoError(t, err)
		gr := toGnarkBN254(t, c, raw)
		require.True(t, gr.IsOnCurve())
		assert.False(t, gr.IsInSubGroup())

		p, err := m.Map(msg)
		require.NoError(t, err)
		gp := toGnarkBN254(t, c, p)
		assert.True(t, gp.IsOnCurve())
		assert.True(t, gp.IsInSubGroup())

		// gnark clears the cofactor with the same psi chain.
		var cleared bn254.G2Affine
		cleared.ClearCofactor(&gr)
		assert.True(t, cleared.Equal(&gp), string(msg))
	}
}

func TestGnarkOracleBLS12381(t *testing.T) {
	for _, c := range []*g2.Curve{g2.BLS12381, g2.BLS12381Iso} {
		m := newMapper(t, c, DigestSHA256)
		for i := 0; i < 8; i++ {
			msg := []byte(fmt.Sprintf("gnark oracle %d", i))

			raw, _, err := m.mapToCurve(msg)
			require.NoError(t, err)
			gr := toGnarkBLS12381(t, c, raw)
			require.True(t, gr.IsOnCurve())

			p, err := m.Map(msg)
			require.NoError(t, err)
			gp := toGnarkBLS12381(t, c, p)
			assert.True(t, gp.IsOnCurve())
			assert.True(t, gp.IsInSubGroup())

			// Both compute [h_eff]P.
			var cleared bls12381.G2Affine
			cleared.ClearCofactor(&gr)
			assert.True(t, cleared.Equal(&gp), "%s/%s", c.Name(), msg)
		}
	}
}
