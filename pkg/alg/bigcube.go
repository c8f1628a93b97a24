package alg

// BigCube holds parity and edge-pairing cases for 4x4x4 and 5x5x5 cubes.
// These don't fit the uniform OLL/PLL shapes: edge-pairing cases are executed
// from a front face and need facelet masks (fc) to grey out everything except
// the pieces being paired, and the parity cases reuse the OLL/PLL icon styles
// on a bigger puzzle.
var BigCube = []Algorithm{
	front("4x4x4 Edge Pairing", 4, "u' R F' U R' F u", FrontGreen,
		[]string{"4x4x4", "EdgePairing"},
		"ssssssssssssssss"+
			"sssssssrsssrssss"+
			"ssssssssssssssss"+
			"ssssssssssssssss"+
			"ssssssssssssssss"+
			"ssssgddsgddsssss"),
	mustAlg(Algorithm{
		Name:   "4x4x4 PLL Parity",
		Size:   4,
		Raw:    "2R2 U2 2R2 u2 2R2 2U2",
		Set:    SetBigCube,
		Tags:   []string{"4x4x4", "PLL", "parity"},
		View:   ViewPlan,
		Arrows: []string{"U13U2", "U2U13", "U14U1", "U1U14"},
	}),
	mustAlg(Algorithm{
		Name:   "4x4x4 OLL Parity",
		Size:   4,
		Raw:    "r U2 x r U2 r U2 r' U2 l U2 r' U2 r U2 r' U2 r'",
		Set:    SetBigCube,
		Tags:   []string{"4x4x4", "OLL", "parity"},
		View:   ViewPlan,
		Params: map[string]string{"sch": "ysssss"},
	}),
	mustAlg(Algorithm{
		Name: "5x5x5 Parity",
		Size: 5,
		Raw:  "r2 B2 U2 l U2 r' U2 r U2 F2 r F2 l' B2 r2",
		Set:  SetBigCube,
		Tags: []string{"5x5x5", "parity"},
		View: ViewPlan,
		Params: map[string]string{"fc": "ssssssdddssdddssdddssrrrs" +
			"ssssssdddssdddssdddssssss" +
			"sbbbssdddssdddssdddssssss" +
			"ssssssdddssdddssdddssssss" +
			"ssssssdddssdddssdddssssss" +
			"ssssssdddssdddssdddssssss"},
	}),
	front("5x5x5 Edge Pairing 1", 5, "u' R F' U R' F u", FrontGreen,
		[]string{"5x5x5", "EdgePairing"},
		"sssssssssssssssssssssssss"+
			"sssssssssrssssrssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssgdddsgdddssdddsssgs"),
	front("5x5x5 Edge Pairing 2", 5, "u' R F' U R' F u", FrontGreen,
		[]string{"5x5x5", "EdgePairing"},
		"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"ssssssssssossssosssssssss"+
			"ssssssdddssdddgsdddgsssss"),
	front("5x5x5 Edge Pairing 3", 5, "d R F' U R' F d'", FrontGreen,
		[]string{"5x5x5", "EdgePairing"},
		"sssssssssssssssssssssssss"+
			"ssssssssssssssrssssrsssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"ssssssdddsgdddsgdddsssss"),
	front("5x5x5 Edge Pairing 4", 5, "d R F' U R' F d'", FrontGreen,
		[]string{"5x5x5", "EdgePairing"},
		"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssossssossssssssssssss"+
			"ssssssdddgsdddgsdddssssss"),
	front("5x5x5 Edge Flipping", 5, "(R U R') (F R' F' R)", FrontRed,
		[]string{"5x5x5", "EdgePairing"},
		"sssssssssssssssssssssssss"+
			"ssssssrrrrsrrrrsrrrrsssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssssssssssssssssssssss"+
			"sssssgssssgssssgsssssssss"),
}
