package g2

// BN254 is the G2 twist of the alt_bn128 curve used by the Ethereum
// precompiles: y^2 = x^3 + 3/(9+i) over F_p^2.
var BN254 = MustCurve(&Params{
	Name:     "bn254",
	Family:   FamilyBN,
	P:        hexInt("30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47"),
	R:        hexInt("30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001"),
	Cofactor: hexInt("30644e72e131a029b85045b68181585e06ceecda572a2489345f2299c0f9fa8d"),
	Seed:     hexInt("44e992b44a6909f1"),
	B: hexElement(
		"2b149d40ceb8aaae81be18991be06ac3b5b4c5e559dbefa33267e6dc24a138e5",
		"9713b03af0fed4cd2cafadeed8fdf4a74fa084e52d1852e4a2bd0685c315d2",
	),
	// xi^((p-1)/3) and xi^((p-1)/2) with xi = 9+i.
	FrobX: hexElement(
		"2fb347984f7911f74c0bec3cf559b143b78cc310c2c3330c99e39557176f553d",
		"16c9e55061ebae204ba4cc8bd75a079432ae2a1d0b7c9dce1665d51c640fcba2",
	),
	FrobY: hexElement(
		"63cf305489af5dcdc5ec698b6e2f9b9dbaae0eda9c95998dc54014671a0135a",
		"7c03cbcac41049a0704b5a7ec796f2b21807dc98fa25bd282d37f632623b0e3",
	),
	GenX: hexElement(
		"1800deef121f1e76426a00665e5c4479674322d4f75edadd46debd5cd992f6ed",
		"198e9393920d483a7260bfb731fb5d25f1aa493335a9e71297e485b7aef312c2",
	),
	GenY: hexElement(
		"12c85ea5db8c6deb4aab71808dcb408fe3d1e7690c43d37b4ce6cc0166fa7daa",
		"90689d0585ff075ec9e99ad690c3395bc4b313370b38ef355acdadcd122975b",
	),
})
