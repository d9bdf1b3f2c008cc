package g2

// Small211 is a toy twist y^2 = x^3 + (1+i) over F_211^2 with
// #E' = 44941 = 13 * 3457. It belongs to no pairing family, so hashing to it
// exercises the generic single-word cofactor multiplication. Only for tests
// and examples; it offers no security.
var Small211 = MustCurve(&Params{
	Name:     "small-211",
	Family:   FamilyOther,
	P:        hexInt("d3"),
	R:        hexInt("d81"),
	Cofactor: hexInt("d"),
	B:        hexElement("1", "1"),
	GenX:     hexElement("ce", "9"),
	GenY:     hexElement("80", "b1"),
})
