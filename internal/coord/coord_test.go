package coord

import (
	"testing"

	"github.com/toughmanshawn/rob-twophase/internal/cubie"
)

func TestSolvedCoordinatesAreZero(t *testing.T) {
	c := cubie.Solved()
	if Twist(&c) != 0 {
		t.Error("solved twist should be 0")
	}
	if Flip(&c) != 0 {
		t.Error("solved flip should be 0")
	}
	if Slice(&c) != 0 {
		t.Error("solved slice should be 0")
	}
	if CPerm(&c) != 0 {
		t.Error("solved corner permutation should be 0")
	}
	if UDEdges(&c) != 0 {
		t.Error("solved UD-edge permutation should be 0")
	}
	if SPerm(&c) != 0 {
		t.Error("solved slice permutation should be 0")
	}
}

func TestTwistRoundTrip(t *testing.T) {
	for raw := 0; raw < NTwist; raw++ {
		c := cubie.Solved()
		SetTwist(&c, raw)
		if got := Twist(&c); got != raw {
			t.Fatalf("twist %d decoded to %d", raw, got)
		}
		sum := 0
		for i := 0; i < cubie.NCorners; i++ {
			sum += int(c.CO[i])
		}
		if sum%3 != 0 {
			t.Fatalf("twist %d orientations sum to %d", raw, sum)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for raw := 0; raw < NFlip; raw++ {
		c := cubie.Solved()
		SetFlip(&c, raw)
		if got := Flip(&c); got != raw {
			t.Fatalf("flip %d decoded to %d", raw, got)
		}
		sum := 0
		for i := 0; i < cubie.NEdges; i++ {
			sum += int(c.EO[i])
		}
		if sum%2 != 0 {
			t.Fatalf("flip %d orientations sum to %d", raw, sum)
		}
	}
}

func TestSliceRoundTrip(t *testing.T) {
	for raw := 0; raw < NSlice; raw++ {
		c := cubie.Solved()
		SetSlice(&c, raw)
		if got := Slice(&c); got != raw {
			t.Fatalf("slice %d decoded to %d", raw, got)
		}
		var seen [cubie.NEdges]bool
		for i := 0; i < cubie.NEdges; i++ {
			if seen[c.EP[i]] {
				t.Fatalf("slice %d produced a non-permutation", raw)
			}
			seen[c.EP[i]] = true
		}
	}
}

func TestCPermRoundTrip(t *testing.T) {
	for raw := 0; raw < NCPerm; raw += 7 {
		c := cubie.Solved()
		SetCPerm(&c, raw)
		if got := CPerm(&c); got != raw {
			t.Fatalf("cperm %d decoded to %d", raw, got)
		}
	}
}

func TestUDEdgesRoundTrip(t *testing.T) {
	for raw := 0; raw < NUDEdges; raw += 7 {
		c := cubie.Solved()
		SetUDEdges(&c, raw)
		if got := UDEdges(&c); got != raw {
			t.Fatalf("udedges %d decoded to %d", raw, got)
		}
		for i := 8; i < cubie.NEdges; i++ {
			if c.EP[i] != uint8(i) {
				t.Fatalf("udedges %d disturbed slice slot %d", raw, i)
			}
		}
	}
}

func TestSPermRoundTrip(t *testing.T) {
	for raw := 0; raw < NSPerm; raw++ {
		c := cubie.Solved()
		SetSPerm(&c, raw)
		if got := SPerm(&c); got != raw {
			t.Fatalf("sperm %d decoded to %d", raw, got)
		}
	}
}

func TestFSlicePacking(t *testing.T) {
	for _, tc := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {2047, 494}, {1234, 100}} {
		flip, slice := tc[0], tc[1]
		f2, s2 := FSliceParts(FSliceCoord(flip, slice))
		if f2 != flip || s2 != slice {
			t.Errorf("fslice pack(%d,%d) unpacked to (%d,%d)", flip, slice, f2, s2)
		}
	}
	if FSliceCoord(NFlip-1, NSlice-1) != NFSlice-1 {
		t.Error("maximum fslice should be NFSlice-1")
	}
}

func TestMoveTablesMatchCubieComposition(t *testing.T) {
	if testing.Short() {
		t.Skip("move table construction is slow")
	}
	mt := NewMoveTables()

	// Spot-check every move against direct cubie-level composition from a
	// few scrambled states.
	seqs := [][]cubie.Move{
		{},
		{cubie.MoveR1, cubie.MoveU2, cubie.MoveF3},
		{cubie.MoveL1, cubie.MoveB2, cubie.MoveD3, cubie.MoveR2, cubie.MoveF1},
	}
	for _, seq := range seqs {
		c := cubie.Solved()
		for _, m := range seq {
			c = cubie.Mul(c, cubie.MoveCubes[m])
		}
		for m := 0; m < cubie.NMoves; m++ {
			moved := cubie.Mul(c, cubie.MoveCubes[m])
			if int(mt.Twist[Twist(&c)][m]) != Twist(&moved) {
				t.Errorf("twist table disagrees for move %v", cubie.Move(m))
			}
			if int(mt.Flip[Flip(&c)][m]) != Flip(&moved) {
				t.Errorf("flip table disagrees for move %v", cubie.Move(m))
			}
			if int(mt.Slice[Slice(&c)][m]) != Slice(&moved) {
				t.Errorf("slice table disagrees for move %v", cubie.Move(m))
			}
			if int(mt.CPerm[CPerm(&c)][m]) != CPerm(&moved) {
				t.Errorf("cperm table disagrees for move %v", cubie.Move(m))
			}
		}
	}
}

func TestPhase2MoveTablesMatchCubieComposition(t *testing.T) {
	if testing.Short() {
		t.Skip("move table construction is slow")
	}
	mt := NewMoveTables()

	// Phase-two sequences keep the slice edges in the slice.
	seqs := [][]cubie.Move{
		{},
		{cubie.MoveU1, cubie.MoveR2},
		{cubie.MoveD3, cubie.MoveF2, cubie.MoveU2, cubie.MoveL2},
	}
	for _, seq := range seqs {
		c := cubie.Solved()
		for _, m := range seq {
			c = cubie.Mul(c, cubie.MoveCubes[m])
		}
		for j, m := range cubie.Phase2Moves {
			moved := cubie.Mul(c, cubie.MoveCubes[m])
			if int(mt.UDEdges[UDEdges(&c)][j]) != UDEdges(&moved) {
				t.Errorf("udedges table disagrees for move %v", m)
			}
			if int(mt.SPerm[SPerm(&c)][j]) != SPerm(&moved) {
				t.Errorf("sperm table disagrees for move %v", m)
			}
		}
	}
}

func TestSliceOfSliceyStates(t *testing.T) {
	// An R move takes two slice edges out of the slice.
	c := cubie.Mul(cubie.Solved(), cubie.MoveCubes[cubie.MoveR1])
	if Slice(&c) == 0 {
		t.Error("slice should leave 0 after an R move")
	}
	// U and D moves keep the slice edges home.
	for _, m := range []cubie.Move{cubie.MoveU1, cubie.MoveD2} {
		c := cubie.Mul(cubie.Solved(), cubie.MoveCubes[m])
		if Slice(&c) != 0 {
			t.Errorf("slice should stay 0 after %v", m)
		}
	}
}
