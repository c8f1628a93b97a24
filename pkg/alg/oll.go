package alg

// OLL holds the orientation-of-last-layer cases for the 3x3x3 cube, grouped
// by the shape of the oriented pattern. The seven corner-only cases (OCLL)
// double as the second step of 2-look OLL and carry an extra tag for it;
// [TwoLookOLL] derives that set from this table.
var OLL = []Algorithm{
	// All edges oriented correctly
	oll("OCLL1 - 21", "(R U R' U)(R U' R' U)(R U2 R')").WithTags("2-Look-OLL"),
	oll("OCLL2 - 22", "R U2 R2 U' R2 U' R2 U2 R").WithTags("2-Look-OLL"),
	oll("OCLL3 - 23", "R2 D (R' U2 R) D' (R' U2 R')").WithTags("2-Look-OLL"),
	oll("OCLL4 - 24", "(r U R' U') (r' F R F')").WithTags("2-Look-OLL"),
	oll("OCLL5 - 25", "x (R' U R) D' (R' U' R) D x'").WithTags("2-Look-OLL"),
	oll("OCLL6 - 26", "R' U' R U' R' U2 R").WithTags("2-Look-OLL"),
	oll("OCLL7 - 27", "R U R' U R U2 R'").WithTags("2-Look-OLL"),
	// T-shapes
	oll("T1 - 33", "(R U R' U')(R' F R F')"),
	oll("T2 - 45", "F (R U R' U') F'"),
	// Squares
	oll("S1 - 5", "(r' U2 R U R' U r)"),
	oll("S2 - 6", "(r U2 R' U' R U' r')"),
	// C-shapes
	oll("C1 - 34", "(R U R2' U') (R' F R U) R U' F'"),
	oll("C2 - 46", "R' U' (R' F R F') U R"),
	// W-shapes
	oll("W1 - 36", "(R' U' R U')(R' U R U) (l U' R' U) x"),
	oll("W2 - 38", "(R U R' U)(R U' R' U')(R' F R F')"),
	// Corners correct, edges flipped
	oll("E1 - 28", "(r U R' U') M (U R U' R')"),
	oll("E2 - 57", "(R U R' U') M' (U R U' r')"),
	// P-shapes
	oll("P1 - 31", "(R' U' F)(U R U' R') F' R"),
	oll("P2 - 32", "R U B' (U' R' U) (R B R')"),
	oll("P3 - 43", "F' U' L' U L F"),
	oll("P4 - 44", "f (R U R' U') f'"),
	// I-shapes
	oll("I1 - 51", "f (R U R' U')(R U R' U') f'"),
	oll("I2 - 52", "(R U R' U R U') y (R U' R') F'"),
	oll("I3 - 55", "R U2 R2 U' (R U' R' U2) (F R F')"),
	oll("I4 - 56", "r' U' r (U' R' U R) (U' R' U R) r' U r"),
	// Fish shapes
	oll("F1 - 9", "(R U R' U') R' F (R2 U R' U') F'"),
	oll("F2 - 10", "(R U R' U) (R' F R F') (R U2' R')"),
	oll("F3 - 35", "(R U2) (R2 F R F') (R U2 R')"),
	oll("F4 - 37", "F (R U' R' U') (R U R' F')"),
	// Knight move shapes
	oll("K1 - 13", "(r U' r') (U' r U r') y' (R' U R)"),
	oll("K2 - 14", "(R' F R) (U R' F' R) y' (R U' R')"),
	oll("K3 - 15", "(r' U' r) (R' U' R U) (r' U r)"),
	oll("K4 - 16", "(r U r') (R U R' U') (r U' r')"),
	// Awkward shapes
	oll("A1 - 29", "(R U R' U') (R U' R') (F' U' F) (R U R')"),
	oll("A2 - 30", "F U (R U2 R' U') (R U2 R' U') F'"),
	oll("A3 - 41", "(R U R' U R U2' R') F (R U R' U') F'"),
	oll("A4 - 42", "(R' U' R U' R' U2 R) F (R U R' U') F'"),
	// L-shapes
	oll("L1 - 47", "F' (L' U' L U)(L' U' L U) F"),
	oll("L2 - 48", "F (R U R' U')(R U R' U') F'"),
	oll("L3 - 49", "r U' r2' U r2 U r2' U' r"),
	oll("L4 - 50", "r' U r2 U' r2' U' r2 U r'"),
	oll("L5 - 53", "(r' U' R U') (R' U R U') R' U2 r"),
	oll("L6 - 54", "(r U R' U) (R U' R' U) R U2' r'"),
	// Lightning bolts
	oll("B1 - 7", "r U R' U R U2 r'"),
	oll("B2 - 8", "r' U' R U' R' U2 r"),
	oll("B3 - 11", "r' (R2 U R' U R U2 R') U M'"),
	oll("B4 - 12", "M' (R' U' R U' R' U2 R) U' M"),
	oll("B5 - 39", "(L F')(L' U' L U) F U' L'"),
	oll("B6 - 40", "(R' F)(R U R' U') F' U R"),
	// No edges oriented correctly
	oll("O1 - 1", "(R U2)(R2 F R F') U2 (R' F R F')"),
	oll("O2 - 2", "F (R U R' U') F' f (R U R' U') f'"),
	oll("O3 - 3", "f (R U R' U') f' U' F (R U R' U') F'"),
	oll("O4 - 4", "f (R U R' U') f' U F (R U R' U') F'"),
	oll("O5 - 17", "(R U R' U) (R' F R F') U2 (R' F R F')"),
	oll("O6 - 18", "r U R' U R U2 r2 U' R U' R' U2 r"),
	oll("O7 - 19", "r' U2 R U R' U r2 U2 R' U' R U' r'"),
	oll("O8 - 20", "M U (R U R' U') M2 (U R U' r')"),
}
