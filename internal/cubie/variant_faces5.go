//go:build faces5

package cubie

// Faces5 reports whether the solver was built for the five-face variant.
const Faces5 = true

// UsableMoves lists the moves the search may play; the B face stays
// untouched in this variant.
var UsableMoves = []Move{
	MoveU1, MoveU2, MoveU3,
	MoveR1, MoveR2, MoveR3,
	MoveF1, MoveF2, MoveF3,
	MoveD1, MoveD2, MoveD3,
	MoveL1, MoveL2, MoveL3,
}

// Phase2Moves lists the moves preserving the phase-two subgroup: any U or
// D turn, half turns elsewhere, no B.
var Phase2Moves = []Move{
	MoveU1, MoveU2, MoveU3,
	MoveD1, MoveD2, MoveD3,
	MoveR2, MoveF2, MoveL2,
}
