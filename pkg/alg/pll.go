package alg

// PLL holds the 21 permutation-of-last-layer cases for the 3x3x3 cube.
// Order is the conventional Aa..Z naming order and determines card adjacency
// on printed pages. Arrow overlays show which pieces each case permutes;
// setup rotations keep every icon in the standard yellow-top orientation.
var PLL = []Algorithm{
	pll("Aa", "x (R' U R') D2 (R U' R')(D2 R2)",
		[]string{"U0U2-s8", "U2U8-s8", "U8U0-s8"}, "x'"),
	pll("Ab", "x (R2 D2)(R U R') D2 (R U' R)",
		[]string{"U8U2-s8", "U0U8-s8", "U2U0-s8"}, "x'"),
	pll("E", "R2 U R' y (R U' R' U) (R U' R' U) (R U' R' U) y' R U' R2",
		[]string{"U0U2", "U2U0", "U6U8", "U8U6"}, ""),
	pll("F", "(R' U' F')(R U R' U')(R' F)(R2 U')(R' U' R U) R' U R",
		[]string{"U1U7", "U7U1", "U2U8", "U8U2"}, ""),
	pll("Ga", "(R2' u)(R' U R' U')(R u') R2 y' (R' U R)",
		[]string{"U0U2-s8", "U2U6-s8", "U6U0-s8", "U1U3-s7", "U3U5-s7", "U5U1-s7"}, "y"),
	pll("Gb", "(R' U' R) y (R2 u)(R' U R U')(R u') R2",
		[]string{"U0U6-s8", "U6U8-s8", "U8U0-s8", "U1U7-s7", "U7U3-s7", "U3U1-s7"}, "y'"),
	pll("Gc", "(R2 u')(R U' R U)(R' u) R2 y (R U' R')",
		[]string{"U0U6-s8", "U6U8-s8", "U8U0-s8", "U7U3-s7", "U3U5-s7", "U5U7-s7"}, "y'"),
	pll("Gd", "(R U R') y' (R2 u')(R U' R' U)(R' u) R2",
		[]string{"U0U2-s8", "U2U6-s8", "U6U0-s8", "U1U3-s7", "U3U7-s7", "U7U1-s7"}, "y"),
	pll("H", "(M2' U' M2') U2 (M2' U' M2')",
		[]string{"U1U7", "U7U1", "U5U3", "U3U5"}, ""),
	pll("Ja", "(R' U L' U2) (R U' R' U2 R) L U'",
		[]string{"U0U2", "U2U0", "U1U3", "U3U1"}, ""),
	pll("Jb", "(R U R' F')(R U R' U')(R' F)(R2 U')(R' U')",
		[]string{"U2U8", "U8U2", "U5U7", "U7U5"}, ""),
	pll("Na", "z (R' U R') D (R2 U' R) (U D') (R' D R2 U' R D')",
		[]string{"U0U8", "U8U0", "U1U7", "U7U1"}, "z'"),
	pll("Nb", "(R' U R U') (R' F' U') (F R U) (R' F R' F') (R U' R)",
		[]string{"U0U8", "U8U0", "U3U5", "U5U3"}, ""),
	pll("Ra", "(R U2')(R' U2)(R B')(R' U' R U)(R B R2 U)",
		[]string{"U1U5", "U5U1", "U6U8", "U8U6"}, ""),
	pll("Rb", "(R' U2)(R U2')(R' F)(R U R' U')(R' F' R2 U')",
		[]string{"U0U2", "U2U0", "U5U7", "U7U5"}, ""),
	pll("T", "(R U R' U')(R' F)(R2 U')(R' U' R U) R' F'",
		[]string{"U3U5-s8", "U5U3-s8", "U2U8", "U8U2"}, ""),
	pll("Ua", "(R2 U')(R' U' R U)(R U)(R U' R)",
		[]string{"U5U1-s7", "U1U3-s7", "U3U5-s7"}, ""),
	pll("Ub", "(R2' U)(R U R' U')(R' U')(R' U R')",
		[]string{"U3U5-s7", "U5U7-s7", "U7U3-s7"}, ""),
	pll("V", "(R' U R' U') x2 y' (R' U R' U') l (R U' R' U) R U",
		[]string{"U1U5", "U5U1", "U0U8", "U8U0"}, "x' y'"),
	pll("Y", "F (R U')(R' U' R U)(R' F')(R U R' U')(R' F R F')",
		[]string{"U1U3", "U3U1", "U0U8", "U8U0"}, ""),
	pll("Z", "(R' U' R U') R U (R U' R' U) R U R2 U' R' (U2)",
		[]string{"U1U5", "U5U1", "U3U7", "U7U3"}, ""),
}
