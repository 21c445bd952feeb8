// Package solver implements the two-phase search over the coordinate and
// symmetry tables. Phase one brings an arbitrary state into the subgroup
// where orientations are solved and the slice edges are home; phase two
// finishes within that subgroup. The search runs several workers, each
// solving the start state pre-rotated by a power of the designated
// rotation symmetry (and optionally inverted), so the workers explore
// disjoint branch orderings without sharing anything but the best length
// found so far.
package solver

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/toughmanshawn/rob-twophase/internal/coord"
	"github.com/toughmanshawn/rob-twophase/internal/cubie"
	"github.com/toughmanshawn/rob-twophase/internal/prun"
	"github.com/toughmanshawn/rob-twophase/internal/sym"
)

// ErrNoSolution is returned when the search exhausts its depth bound
// without finding a solution. A context that expires first surfaces as
// the context's own error instead.
var ErrNoSolution = errors.New("solver: no solution found within limits")

const maxDepth = 50

// Result is a solving sequence. Phase1 is the length of the shortest
// prefix bringing the cube into the phase-two subgroup (orientations
// solved, slice edges home).
type Result struct {
	Moves  []cubie.Move
	Phase1 int
}

// Solver owns the immutable tables and search configuration.
type Solver struct {
	syms    *sym.Tables
	moves   *coord.MoveTables
	prun    *prun.Tables
	workers int
}

// New creates a search over the given tables. workers caps the parallel
// fan-out; zero means the full fan (two per rotation power).
func New(st *sym.Tables, mt *coord.MoveTables, pt *prun.Tables, workers int) *Solver {
	return &Solver{syms: st, moves: mt, prun: pt, workers: workers}
}

// Solve searches for a move sequence bringing c to the solved state. It
// keeps improving until a solution of at most maxLen moves is found or
// ctx is done, then returns the best solution seen.
func (s *Solver) Solve(ctx context.Context, c cubie.Cube, maxLen int) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sh := &shared{target: maxLen, cancel: cancel}
	sh.best.Store(maxDepth)

	fan := s.workers
	if fan <= 0 || fan > 2*s.syms.RotOrder {
		fan = 2 * s.syms.RotOrder
	}

	var wg sync.WaitGroup
	n := 0
	for _, pw := range s.syms.RotPows {
		for _, inverted := range [2]bool{false, true} {
			if n == fan {
				break
			}
			n++
			start := s.conjugate(c, pw)
			if inverted {
				start = cubie.Inverse(start)
			}
			w := &worker{
				s:        s,
				sh:       sh,
				ctx:      ctx,
				start:    start,
				rotIdx:   pw,
				inverted: inverted,
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.run()
			}()
		}
	}
	wg.Wait()

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if !sh.found {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		return Result{}, ErrNoSolution
	}
	// The workers search in rotated or inverted frames, so the phase
	// boundary of the winning sequence is only meaningful relative to
	// the caller's cube. Recompute it here.
	return Result{Moves: sh.sol, Phase1: phaseSplit(c, sh.sol)}, nil
}

// phaseSplit returns the length of the shortest prefix of moves taking c
// into the phase-two subgroup.
func phaseSplit(c cubie.Cube, moves []cubie.Move) int {
	for i := 0; ; i++ {
		if coord.Twist(&c) == 0 && coord.Flip(&c) == 0 && coord.Slice(&c) == 0 {
			return i
		}
		if i == len(moves) {
			return len(moves)
		}
		c = cubie.Mul(c, cubie.MoveCubes[moves[i]])
	}
}

// conjugate returns c viewed through group symmetry s.
func (s *Solver) conjugate(c cubie.Cube, symIdx int) cubie.Cube {
	return cubie.Mul(cubie.Mul(s.syms.Cubes[s.syms.Inv[symIdx]], c), s.syms.Cubes[symIdx])
}

// shared is the only state workers exchange.
type shared struct {
	best   atomic.Int32 // exclusive upper bound read lock-free for pruning
	target int
	cancel context.CancelFunc

	mu    sync.Mutex
	sol   []cubie.Move
	found bool
}

func (sh *shared) offer(moves []cubie.Move) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if int32(len(moves)) >= sh.best.Load() && sh.found {
		return
	}
	sh.best.Store(int32(len(moves)))
	sh.sol = append([]cubie.Move(nil), moves...)
	sh.found = true
	if len(moves) <= sh.target {
		sh.cancel()
	}
}

type worker struct {
	s        *Solver
	sh       *shared
	ctx      context.Context
	start    cubie.Cube
	rotIdx   int
	inverted bool

	moves1  [maxDepth]cubie.Move
	moves2  [maxDepth]cubie.Move
	nodes   int
	aborted bool
}

func (w *worker) run() {
	tw := coord.Twist(&w.start)
	fl := coord.Flip(&w.start)
	sl := coord.Slice(&w.start)
	for d1 := w.s.prun.Dist1(fl, sl, tw); d1 < maxDepth; d1++ {
		if w.aborted || int32(d1) >= w.sh.best.Load() || w.ctx.Err() != nil {
			return
		}
		w.phase1(tw, fl, sl, d1, -1, 0)
	}
}

func (w *worker) checkAbort() bool {
	w.nodes++
	if w.nodes&0xFFF == 0 && w.ctx.Err() != nil {
		w.aborted = true
	}
	return w.aborted
}

func (w *worker) phase1(twist, flip, slice, togo, last, depth int) {
	if togo == 0 {
		if twist == 0 && flip == 0 && slice == 0 {
			w.phase2Start(depth, last)
		}
		return
	}
	if w.s.prun.Dist1(flip, slice, twist) > togo || w.checkAbort() {
		return
	}
	mt := w.s.moves
	for _, m := range cubie.UsableMoves {
		if skip(last, m) {
			continue
		}
		w.moves1[depth] = m
		w.phase1(
			int(mt.Twist[twist][m]),
			int(mt.Flip[flip][m]),
			int(mt.Slice[slice][m]),
			togo-1, int(m), depth+1,
		)
		if w.aborted {
			return
		}
	}
}

func (w *worker) phase2Start(d1, last int) {
	if int32(d1) >= w.sh.best.Load() {
		return
	}
	cc := w.start
	for i := 0; i < d1; i++ {
		cc = cubie.Mul(cc, cubie.MoveCubes[w.moves1[i]])
	}
	cp := coord.CPerm(&cc)
	ud := coord.UDEdges(&cc)
	sp := coord.SPerm(&cc)

	lb := w.s.prun.Dist2(cp, ud)
	if lb == 0 && sp != 0 {
		lb = 1
	}
	for d2 := lb; d1+d2 < int(w.sh.best.Load()); d2++ {
		if w.phase2(cp, ud, sp, d2, last, 0, d1) || w.aborted {
			return
		}
	}
}

func (w *worker) phase2(cperm, udedges, sperm, togo, last, depth, d1 int) bool {
	if togo == 0 {
		if cperm == 0 && udedges == 0 && sperm == 0 {
			w.record(d1, depth)
			return true
		}
		return false
	}
	if w.s.prun.Dist2(cperm, udedges) > togo || w.checkAbort() {
		return false
	}
	mt := w.s.moves
	for j, m := range cubie.Phase2Moves {
		if skip(last, m) {
			continue
		}
		w.moves2[depth] = m
		if w.phase2(
			int(mt.CPerm[cperm][m]),
			int(mt.UDEdges[udedges][j]),
			int(mt.SPerm[sperm][j]),
			togo-1, int(m), depth+1, d1,
		) {
			return true
		}
		if w.aborted {
			return false
		}
	}
	return false
}

// record maps the worker-frame solution back to the caller's frame and
// offers it to the shared best.
func (w *worker) record(d1, d2 int) {
	seq := make([]cubie.Move, 0, d1+d2)
	seq = append(seq, w.moves1[:d1]...)
	seq = append(seq, w.moves2[:d2]...)

	if w.inverted {
		for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
			seq[i], seq[j] = seq[j], seq[i]
		}
		for i := range seq {
			seq[i] = seq[i].Inverse()
		}
	}
	// Undo the pre-rotation: a worker move m acts on the caller's cube
	// as m conjugated by the rotation's inverse.
	back := w.s.syms.Inv[w.rotIdx]
	for i := range seq {
		seq[i] = w.s.syms.ConjMove[seq[i]][back]
	}
	w.sh.offer(seq)
}

// skip enforces the canonical move ordering: never turn the same face
// twice in a row, and order commuting opposite-face pairs.
func skip(last int, m cubie.Move) bool {
	if last < 0 {
		return false
	}
	lm := cubie.Move(last)
	if m.Face() == lm.Face() {
		return true
	}
	return m.Axis() == lm.Axis() && m.Face() > lm.Face()
}
