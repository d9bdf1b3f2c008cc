//go:build blst

// Cross-check of BLS12-381 outputs against the blst library.
//
// Test with: go test -tags blst ./crypto/h2c/ -run Blst
package h2c

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	blst "github.com/supranational/blst/bindings/go"

	"github.com/eth2030/g2map/crypto/g2"
)

// blstSerialize encodes p in the 192-byte uncompressed format blst
// deserializes: x.c1 || x.c0 || y.c1 || y.c0, 48 bytes each.
func blstSerialize(t *testing.T, c *g2.Curve, p *g2.Point) []byte {
	t.Helper()
	x, y, err := c.Affine(p)
	require.NoError(t, err)
	out := make([]byte, 192)
	x.C1.FillBytes(out[0:48])
	x.C0.FillBytes(out[48:96])
	y.C1.FillBytes(out[96:144])
	y.C0.FillBytes(out[144:192])
	return out
}

func TestBlstOracle(t *testing.T) {
	for _, c := range []*g2.Curve{g2.BLS12381, g2.BLS12381Iso} {
		m := newMapper(t, c, DigestSHA256)
		for i := 0; i < 8; i++ {
			msg := []byte(fmt.Sprintf("blst oracle %d", i))
			p, err := m.Map(msg)
			require.NoError(t, err)

			enc := blstSerialize(t, c, p)
			q := new(blst.P2Affine).Deserialize(enc)
			require.NotNil(t, q, "blst rejected %s/%s", c.Name(), msg)
			assert.True(t, q.InG2())
			assert.Equal(t, enc, q.Serialize())
		}
	}
}
