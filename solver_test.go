package twophase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/toughmanshawn/rob-twophase/internal/cubie"
)

var (
	solverOnce   sync.Once
	sharedSolver *Solver
	solverErr    error
)

// testSolver builds the full solver once; table generation dominates, so
// everything using it skips under -short.
func testSolver(t *testing.T) *Solver {
	t.Helper()
	if testing.Short() {
		t.Skip("table generation is slow")
	}
	solverOnce.Do(func() {
		sharedSolver, solverErr = New(WithTimeout(20 * time.Second))
	})
	if solverErr != nil {
		t.Fatalf("building solver: %v", solverErr)
	}
	return sharedSolver
}

func TestSolveScramble(t *testing.T) {
	s := testSolver(t)
	scramble := "R U2 F' L D' B2 R2 U F D2 L' B U' R F2"

	sol, err := s.Solve(context.Background(), scramble)
	if err != nil {
		t.Fatalf("solving scramble: %v", err)
	}
	if len(sol.Moves) == 0 || len(sol.Moves) > 24 {
		t.Fatalf("implausible solution length %d", len(sol.Moves))
	}
	if sol.Phase1 < 0 || sol.Phase1 > len(sol.Moves) {
		t.Errorf("phase split %d outside solution of length %d", sol.Phase1, len(sol.Moves))
	}

	// Scramble followed by solution must give the solved cube.
	scr, err := ParseMoves(scramble)
	if err != nil {
		t.Fatal(err)
	}
	c := cubie.Solved()
	for _, m := range scr {
		c = cubie.Mul(c, cubie.MoveCubes[m.index()])
	}
	for _, m := range sol.Moves {
		c = cubie.Mul(c, cubie.MoveCubes[m.index()])
	}
	if c != cubie.Solved() {
		t.Error("applying the solution should solve the cube")
	}
}

func TestSolveRejectsBadNotation(t *testing.T) {
	s := testSolver(t)
	if _, err := s.Solve(context.Background(), "R U X"); err == nil {
		t.Error("invalid notation should be rejected")
	}
}

func TestSolveEmptyScramble(t *testing.T) {
	s := testSolver(t)
	sol, err := s.Solve(context.Background(), "")
	if err != nil {
		t.Fatalf("solving the empty scramble: %v", err)
	}
	if len(sol.Moves) != 0 {
		t.Errorf("empty scramble should need 0 moves, got %d", len(sol.Moves))
	}
}

func TestScrambleRoundTrip(t *testing.T) {
	s := testSolver(t)
	scramble, err := s.Scramble(context.Background())
	if err != nil {
		t.Fatalf("generating scramble: %v", err)
	}
	moves, err := ParseMoves(scramble)
	if err != nil {
		t.Fatalf("generated scramble should parse: %v", err)
	}
	if len(moves) == 0 {
		t.Fatal("generated scramble should not be empty")
	}

	// The scramble's state must be solvable back to identity.
	sol, err := s.Solve(context.Background(), scramble)
	if err != nil {
		t.Fatalf("solving generated scramble: %v", err)
	}
	c := cubie.Solved()
	for _, m := range moves {
		c = cubie.Mul(c, cubie.MoveCubes[m.index()])
	}
	for _, m := range sol.Moves {
		c = cubie.Mul(c, cubie.MoveCubes[m.index()])
	}
	if c != cubie.Solved() {
		t.Error("scramble plus its solution should give the solved cube")
	}
}

func TestSolutionString(t *testing.T) {
	sol := &Solution{Moves: []Move{{FaceR, CW}, {FaceU, Double}, {FaceF, CCW}}}
	if got := sol.String(); got != "R U2 F'" {
		t.Errorf("Solution.String() = %q", got)
	}
}

func TestRandomStateIsValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := randomState()
		if err := c.Verify(); err != nil {
			t.Fatalf("random state %d invalid: %v", i, err)
		}
	}
}
