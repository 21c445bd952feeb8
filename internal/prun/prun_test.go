package prun

import (
	"sync"
	"testing"

	"github.com/toughmanshawn/rob-twophase/internal/coord"
	"github.com/toughmanshawn/rob-twophase/internal/cubie"
	"github.com/toughmanshawn/rob-twophase/internal/sym"
)

var (
	buildOnce sync.Once
	pt        *Tables
	st        *sym.Tables
	mt        *coord.MoveTables
	buildErr  error
)

// testTables builds the full table set once; this takes a while, so every
// test here skips under -short.
func testTables(t *testing.T) (*Tables, *sym.Tables, *coord.MoveTables) {
	t.Helper()
	if testing.Short() {
		t.Skip("pruning table generation is slow")
	}
	buildOnce.Do(func() {
		st, buildErr = sym.New()
		if buildErr != nil {
			return
		}
		if buildErr = st.BuildClasses(); buildErr != nil {
			return
		}
		mt = coord.NewMoveTables()
		pt = New(st, mt)
	})
	if buildErr != nil {
		t.Fatalf("building tables: %v", buildErr)
	}
	return pt, st, mt
}

func TestSolvedDistancesAreZero(t *testing.T) {
	p, _, _ := testTables(t)
	if d := p.Dist1(0, 0, 0); d != 0 {
		t.Errorf("phase-one distance of solved should be 0, got %d", d)
	}
	if d := p.Dist2(0, 0); d != 0 {
		t.Errorf("phase-two distance of solved should be 0, got %d", d)
	}
}

func TestTablesFullyFilled(t *testing.T) {
	p, _, _ := testTables(t)
	for i, v := range p.Phase1 {
		if v == 0xFF {
			t.Fatalf("phase-one entry %d never reached", i)
		}
	}
	for i, v := range p.Phase2 {
		if v == 0xFF {
			t.Fatalf("phase-two entry %d never reached", i)
		}
	}
}

func TestSingleMoveDistances(t *testing.T) {
	p, _, _ := testTables(t)
	for _, m := range cubie.UsableMoves {
		c := cubie.Mul(cubie.Solved(), cubie.MoveCubes[m])
		d := p.Dist1(coord.Flip(&c), coord.Slice(&c), coord.Twist(&c))
		if d > 1 {
			t.Errorf("phase-one distance after %v should be at most 1, got %d", m, d)
		}
	}
	for _, m := range cubie.Phase2Moves {
		c := cubie.Mul(cubie.Solved(), cubie.MoveCubes[m])
		d := p.Dist2(coord.CPerm(&c), coord.UDEdges(&c))
		if d != 1 {
			t.Errorf("phase-two distance after %v should be 1, got %d", m, d)
		}
	}
}

func TestDist1NeverExceedsMoveCount(t *testing.T) {
	p, _, _ := testTables(t)
	scramble := []cubie.Move{
		cubie.MoveR1, cubie.MoveU2, cubie.MoveF3, cubie.MoveL1,
		cubie.MoveD3, cubie.MoveB2, cubie.MoveR2, cubie.MoveU1,
	}
	c := cubie.Solved()
	for n, m := range scramble {
		c = cubie.Mul(c, cubie.MoveCubes[m])
		d := p.Dist1(coord.Flip(&c), coord.Slice(&c), coord.Twist(&c))
		if d > n+1 {
			t.Errorf("phase-one distance %d after %d moves", d, n+1)
		}
	}
}

func TestDistanceChangesByAtMostOnePerMove(t *testing.T) {
	p, _, mtab := testTables(t)
	// Heuristic consistency along a random-ish walk.
	flip, slice, twist := 0, 0, 0
	moves := []cubie.Move{
		cubie.MoveF1, cubie.MoveR3, cubie.MoveU1, cubie.MoveB1,
		cubie.MoveL2, cubie.MoveD1, cubie.MoveF2, cubie.MoveR1,
	}
	prev := 0
	for _, m := range moves {
		flip = int(mtab.Flip[flip][m])
		slice = int(mtab.Slice[slice][m])
		twist = int(mtab.Twist[twist][m])
		d := p.Dist1(flip, slice, twist)
		if d > prev+1 || d < prev-1 {
			t.Fatalf("phase-one distance jumped from %d to %d on %v", prev, d, m)
		}
		prev = d
	}
}

func TestSymmetricStatesShareDistance(t *testing.T) {
	p, s, _ := testTables(t)
	// A state and its conjugate by any reduction symmetry are the same
	// cube in a rotated frame, so their heuristics agree.
	c := cubie.Solved()
	for _, m := range []cubie.Move{cubie.MoveR1, cubie.MoveU2, cubie.MoveF1, cubie.MoveD3} {
		c = cubie.Mul(c, cubie.MoveCubes[m])
	}
	want := p.Dist1(coord.Flip(&c), coord.Slice(&c), coord.Twist(&c))
	for j := 0; j < sym.NSymsSub; j++ {
		cc := cubie.Mul(cubie.Mul(s.Cubes[s.Inv[s.Sub[j]]], c), s.Cubes[s.Sub[j]])
		got := p.Dist1(coord.Flip(&cc), coord.Slice(&cc), coord.Twist(&cc))
		if got != want {
			t.Errorf("conjugate by subgroup symmetry %d has distance %d, want %d", j, got, want)
		}
	}
}
