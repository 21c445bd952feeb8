package cubie

// Move indexes the basic face moves. Faces are ordered U, R, F, D, L, B
// with the three turns of a face adjacent, so m/3 is the face and moves
// on the same rotation axis share a face index modulo 3. The B moves sit
// last so the five-face variant is a prefix of the list.
type Move int

const (
	MoveU1 Move = iota
	MoveU2
	MoveU3
	MoveR1
	MoveR2
	MoveR3
	MoveF1
	MoveF2
	MoveF3
	MoveD1
	MoveD2
	MoveD3
	MoveL1
	MoveL2
	MoveL3
	MoveB1
	MoveB2
	MoveB3

	NMoves = 18
)

var moveNames = [NMoves]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

func (m Move) String() string {
	if m < 0 || m >= NMoves {
		return "?"
	}
	return moveNames[m]
}

// Face returns the face index (0..5) the move turns.
func (m Move) Face() int { return int(m) / 3 }

// Axis returns the rotation axis (0..2); opposite faces share an axis.
func (m Move) Axis() int { return m.Face() % 3 }

// Inverse returns the move undoing m.
func (m Move) Inverse() Move {
	switch int(m) % 3 {
	case 0:
		return m + 2
	case 2:
		return m - 2
	}
	return m
}

// Quarter-turn cubes for the six faces.
var (
	uCube = Cube{
		CP: [8]uint8{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		EP: [12]uint8{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
	}
	rCube = Cube{
		CP: [8]uint8{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [12]uint8{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
	}
	fCube = Cube{
		CP: [8]uint8{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [12]uint8{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	}
	dCube = Cube{
		CP: [8]uint8{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		EP: [12]uint8{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
	}
	lCube = Cube{
		CP: [8]uint8{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [12]uint8{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
	}
	bCube = Cube{
		CP: [8]uint8{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [12]uint8{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
)

// MoveCubes holds the cubie-level transform of every basic move.
var MoveCubes [NMoves]Cube

func init() {
	for f, q := range [6]Cube{uCube, rCube, fCube, dCube, lCube, bCube} {
		c := q
		for n := 0; n < 3; n++ {
			MoveCubes[3*f+n] = c
			c = Mul(c, q)
		}
	}
}

// Symmetry generator cubes. The full 48-element symmetry group is the
// closure of these four under composition. LR2 carries the mirrored
// corner orientation encoding (all 3s).
var (
	LR2Cube = Cube{
		CP: [8]uint8{UFL, URF, UBR, ULB, DLF, DFR, DRB, DBL},
		CO: [8]uint8{3, 3, 3, 3, 3, 3, 3, 3},
		EP: [12]uint8{UL, UF, UR, UB, DL, DF, DR, DB, FL, FR, BR, BL},
	}
	U4Cube = Cube{
		CP: [8]uint8{UBR, URF, UFL, ULB, DRB, DFR, DLF, DBL},
		EP: [12]uint8{UB, UR, UF, UL, DB, DR, DF, DL, BR, FR, FL, BL},
		EO: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1},
	}
	F2Cube = Cube{
		CP: [8]uint8{DLF, DFR, DRB, DBL, UFL, URF, UBR, ULB},
		EP: [12]uint8{DL, DF, DR, DB, UL, UF, UR, UB, FL, FR, BR, BL},
	}
	URF3Cube = Cube{
		CP: [8]uint8{URF, DFR, DLF, UFL, UBR, DRB, DBL, ULB},
		CO: [8]uint8{1, 2, 1, 2, 2, 1, 2, 1},
		EP: [12]uint8{UF, FR, DF, FL, UB, BR, DB, BL, UR, DR, DL, UL},
		EO: [12]uint8{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1},
	}
)
