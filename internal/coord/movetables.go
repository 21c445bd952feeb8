package coord

import "github.com/toughmanshawn/rob-twophase/internal/cubie"

// MoveTables holds the per-move transition of every coordinate. Twist,
// Flip, Slice and CPerm are defined for all basic moves; UDEdges and
// SPerm only exist inside phase two and are indexed by the position of
// the move in cubie.Phase2Moves.
type MoveTables struct {
	Twist [][cubie.NMoves]uint16
	Flip  [][cubie.NMoves]uint16
	Slice [][cubie.NMoves]uint16
	CPerm [][cubie.NMoves]uint16

	UDEdges [][]uint16
	SPerm   [][]uint16
}

// NewMoveTables builds all transition tables. Construction is exhaustive
// over each coordinate's domain and deterministic.
func NewMoveTables() *MoveTables {
	mt := &MoveTables{
		Twist:   make([][cubie.NMoves]uint16, NTwist),
		Flip:    make([][cubie.NMoves]uint16, NFlip),
		Slice:   make([][cubie.NMoves]uint16, NSlice),
		CPerm:   make([][cubie.NMoves]uint16, NCPerm),
		UDEdges: make([][]uint16, NUDEdges),
		SPerm:   make([][]uint16, NSPerm),
	}

	var moved cubie.Cube
	for raw := 0; raw < NTwist; raw++ {
		c := cubie.Solved()
		SetTwist(&c, raw)
		for m := 0; m < cubie.NMoves; m++ {
			cubie.MulCorners(&c, &cubie.MoveCubes[m], &moved)
			mt.Twist[raw][m] = uint16(Twist(&moved))
		}
	}
	for raw := 0; raw < NFlip; raw++ {
		c := cubie.Solved()
		SetFlip(&c, raw)
		for m := 0; m < cubie.NMoves; m++ {
			cubie.MulEdges(&c, &cubie.MoveCubes[m], &moved)
			mt.Flip[raw][m] = uint16(Flip(&moved))
		}
	}
	for raw := 0; raw < NSlice; raw++ {
		c := cubie.Solved()
		SetSlice(&c, raw)
		for m := 0; m < cubie.NMoves; m++ {
			cubie.MulEdges(&c, &cubie.MoveCubes[m], &moved)
			mt.Slice[raw][m] = uint16(Slice(&moved))
		}
	}
	for raw := 0; raw < NCPerm; raw++ {
		c := cubie.Solved()
		SetCPerm(&c, raw)
		for m := 0; m < cubie.NMoves; m++ {
			cubie.MulCorners(&c, &cubie.MoveCubes[m], &moved)
			mt.CPerm[raw][m] = uint16(CPerm(&moved))
		}
	}
	for raw := 0; raw < NUDEdges; raw++ {
		c := cubie.Solved()
		SetUDEdges(&c, raw)
		row := make([]uint16, len(cubie.Phase2Moves))
		for j, m := range cubie.Phase2Moves {
			cubie.MulEdges(&c, &cubie.MoveCubes[m], &moved)
			row[j] = uint16(UDEdges(&moved))
		}
		mt.UDEdges[raw] = row
	}
	for raw := 0; raw < NSPerm; raw++ {
		c := cubie.Solved()
		SetSPerm(&c, raw)
		row := make([]uint16, len(cubie.Phase2Moves))
		for j, m := range cubie.Phase2Moves {
			cubie.MulEdges(&c, &cubie.MoveCubes[m], &moved)
			row[j] = uint16(SPerm(&moved))
		}
		mt.SPerm[raw] = row
	}
	return mt
}
