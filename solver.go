package twophase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/toughmanshawn/rob-twophase/internal/coord"
	"github.com/toughmanshawn/rob-twophase/internal/cubie"
	"github.com/toughmanshawn/rob-twophase/internal/prun"
	"github.com/toughmanshawn/rob-twophase/internal/solver"
	"github.com/toughmanshawn/rob-twophase/internal/sym"
)

// Solver holds the fully built lookup tables and solves scrambles. It is
// safe for concurrent use after New returns.
type Solver struct {
	cfg    config
	search *solver.Solver
}

// Solution is a solving move sequence. Phase1 is the length of the
// shortest prefix that solves all orientations and returns the slice
// edges home, the transition point between the two phases.
type Solution struct {
	Moves    []Move
	Phase1   int
	Duration time.Duration
}

// String returns the solution in standard notation.
func (s *Solution) String() string {
	return FormatMoves(s.Moves)
}

// New builds all tables and returns a ready solver. This is expensive
// (symmetry classes plus pruning tables); do it once per process.
func New(opts ...Option) (*Solver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	st, err := sym.New()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTables, err)
	}
	if err := st.BuildClasses(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTables, err)
	}
	mt := coord.NewMoveTables()
	pt := prun.New(st, mt)

	return &Solver{
		cfg:    *cfg,
		search: solver.New(st, mt, pt, cfg.workers),
	}, nil
}

// Solve parses a scramble in standard notation and returns a solution
// for the state it produces.
func (s *Solver) Solve(ctx context.Context, scramble string) (*Solution, error) {
	moves, err := ParseMoves(scramble)
	if err != nil {
		return nil, err
	}
	return s.SolveMoves(ctx, moves)
}

// SolveMoves solves the state reached by applying moves to a solved
// cube.
func (s *Solver) SolveMoves(ctx context.Context, moves []Move) (*Solution, error) {
	c := cubie.Solved()
	for _, m := range moves {
		c = cubie.Mul(c, cubie.MoveCubes[m.index()])
	}
	return s.solveState(ctx, c)
}

func (s *Solver) solveState(ctx context.Context, c cubie.Cube) (*Solution, error) {
	if err := c.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	if _, ok := ctx.Deadline(); !ok && s.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.timeout)
		defer cancel()
	}

	started := time.Now()
	res, err := s.search.Solve(ctx, c, s.cfg.maxLength)
	if err != nil {
		if err == solver.ErrNoSolution {
			return nil, ErrNoSolution
		}
		return nil, err
	}

	sol := &Solution{
		Moves:    make([]Move, len(res.Moves)),
		Phase1:   res.Phase1,
		Duration: time.Since(started),
	}
	for i, m := range res.Moves {
		sol.Moves[i] = moveFromIndex(m)
	}
	return sol, nil
}

// Scramble draws a uniformly random reachable state and returns a move
// sequence producing it from the solved cube.
func (s *Solver) Scramble(ctx context.Context) (string, error) {
	c := randomState()
	sol, err := s.solveState(ctx, c)
	if err != nil {
		return "", err
	}
	// The solution brings the state to solved; its reversed inverse
	// brings solved to the state.
	scr := make([]Move, len(sol.Moves))
	for i, m := range sol.Moves {
		scr[len(scr)-1-i] = m.Inverse()
	}
	return FormatMoves(scr), nil
}

// randomState samples a uniformly random valid cubie state: independent
// random permutations with matched parity, orientations summing to zero.
func randomState() cubie.Cube {
	var c cubie.Cube
	cp := rand.Perm(cubie.NCorners)
	ep := rand.Perm(cubie.NEdges)
	if permParity(cp) != permParity(ep) {
		ep[0], ep[1] = ep[1], ep[0]
	}
	for i, v := range cp {
		c.CP[i] = uint8(v)
	}
	for i, v := range ep {
		c.EP[i] = uint8(v)
	}
	coord.SetTwist(&c, rand.IntN(coord.NTwist))
	coord.SetFlip(&c, rand.IntN(coord.NFlip))
	return c
}

func permParity(p []int) int {
	parity := 0
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				parity ^= 1
			}
		}
	}
	return parity
}
