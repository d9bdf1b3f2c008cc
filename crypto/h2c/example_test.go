package h2c_test

import (
	"fmt"

	"github.com/eth2030/g2map/crypto/g2"
	"github.com/eth2030/g2map/crypto/h2c"
)

func ExampleMapper_Map() {
	m, err := h2c.New(g2.Small211, h2c.DefaultConfig())
	if err != nil {
		panic(err)
	}
	p, err := m.Map([]byte("abc"))
	if err != nil {
		panic(err)
	}
	fmt.Println(p.X, p.Y)
	// Output: (0xb1, 0x73) (0xbb, 0x57)
}
