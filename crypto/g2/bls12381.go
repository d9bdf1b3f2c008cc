package g2

var (
	// BLS12381 is the G2 twist of BLS12-381: y^2 = x^3 + 4(1+i) over F_p^2.
	BLS12381 = MustCurve(bls12381Params("bls12-381", nil))

	// BLS12381Iso is BLS12381 with the 3-isogeny of RFC 9380 section 8.8.2
	// configured, which switches the mapper to its constant-time mode: the
	// root search runs on y^2 = x^3 + 240i*x + 1012(1+i) and the result is
	// carried over by the isogeny.
	BLS12381Iso = MustCurve(bls12381Params("bls12-381-iso", bls12381Isogeny()))
)

func bls12381Params(name string, iso *Isogeny) *Params {
	return &Params{
		Name:     name,
		Family:   FamilyBLS12,
		P:        hexInt("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab"),
		R:        hexInt("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001"),
		Cofactor: hexInt("5d543a95414e7f1091d50792876a202cd91de4547085abaa68a205b2e5a7ddfa628f1cb4d9e82ef21537e293a6691ae1616ec6e786f0c70cf1c38e31c7238e5"),
		Seed:     hexInt("-d201000000010000"),
		B:        hexElement("4", "4"),
		// Inverses of xi^((p-1)/3) and xi^((p-1)/2) with xi = 1+i.
		FrobX: hexElement(
			"0",
			"1a0111ea397fe699ec02408663d4de85aa0d857d89759ad4897d29650fb85f9b409427eb4f49fffd8bfd00000000aaad",
		),
		FrobY: hexElement(
			"135203e60180a68ee2e9c448d77a2cd91c3dedd930b1cf60ef396489f61eb45e304466cf3e67fa0af1ee7b04121bdea2",
			"6af0e0437ff400b6831e36d6bd17ffe48395dabc2d3435e77f76e17009241c5ee67992f72ec05f4c81084fbede3cc09",
		),
		GenX: hexElement(
			"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8",
			"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e",
		),
		GenY: hexElement(
			"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801",
			"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be",
		),
		Isogeny: iso,
	}
}

// bls12381Isogeny returns the 3-isogeny E2' -> E2 of RFC 9380, appendix E.3.
// Coefficients are in ascending order of degree; both denominators are monic.
func bls12381Isogeny() *Isogeny {
	return &Isogeny{
		XNum: Polynomial{
			hexElement(
				"5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97d6",
				"5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97d6",
			),
			hexElement(
				"0",
				"11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71a",
			),
			hexElement(
				"11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71e",
				"8ab05f8bdd54cde190937e76bc3e447cc27c3d6fbd7063fcd104635a790520c0a395554e5c6aaaa9354ffffffffe38d",
			),
			hexElement(
				"171d6541fa38ccfaed6dea691f5fb614cb14b4e7f4e810aa22d6108f142b85757098e38d0f671c7188e2aaaaaaaa5ed1",
				"0",
			),
		},
		XDen: Polynomial{
			hexElement(
				"0",
				"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa63",
			),
			hexElement(
				"c",
				"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa9f",
			),
			hexElement("1", "0"),
		},
		YNum: Polynomial{
			hexElement(
				"1530477c7ab4113b59a4c18b076d11930f7da5d4a07f649bf54439d87d27e500fc8c25ebf8c92f6812cfc71c71c6d706",
				"1530477c7ab4113b59a4c18b076d11930f7da5d4a07f649bf54439d87d27e500fc8c25ebf8c92f6812cfc71c71c6d706",
			),
			hexElement(
				"0",
				"5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97be",
			),
			hexElement(
				"11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71c",
				"8ab05f8bdd54cde190937e76bc3e447cc27c3d6fbd7063fcd104635a790520c0a395554e5c6aaaa9354ffffffffe38f",
			),
			hexElement(
				"124c9ad43b6cf79bfbf7043de3811ad0761b0f37a1e26286b0e977c69aa274524e79097a56dc4bd9e1b371c71c718b10",
				"0",
			),
		},
		YDen: Polynomial{
			hexElement(
				"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa8fb",
				"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa8fb",
			),
			hexElement(
				"0",
				"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa9d3",
			),
			hexElement(
				"12",
				"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa99",
			),
			hexElement("1", "0"),
		},
		SourceA: hexElement("0", "f0"),
		SourceB: hexElement("3f4", "3f4"),
	}
}
