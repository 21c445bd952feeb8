// Package twophase solves the 3x3 Rubik's cube with the two-phase
// algorithm, using symmetry reduction to keep the pruning tables small.
//
// # Quick Start
//
// Create a solver once and reuse it; construction generates all lookup
// tables and takes a while:
//
//	solver, err := twophase.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sol, err := solver.Solve(context.Background(), "R U R' U' F2 D L")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol)          // e.g. "L' D' F2 U R U' R'"
//	fmt.Println(sol.Phase1)   // moves spent leaving phase one
//
// # Scrambles
//
// Scramble draws a uniformly random reachable state and returns a move
// sequence producing it from solved:
//
//	scr, err := solver.Scramble(context.Background())
//
// # Options
//
// The search can be tuned at construction time:
//
//	solver, err := twophase.New(
//	    twophase.WithMaxLength(20),
//	    twophase.WithTimeout(500*time.Millisecond),
//	    twophase.WithWorkers(6),
//	)
//
// Solving is safe for concurrent use: the tables are immutable after New
// and each Solve call runs its own workers, partitioned by powers of a
// fixed rotation symmetry so they never contend.
//
// Building with the "faces5" tag produces a solver that never turns the
// B face; the symmetry reduction shrinks accordingly.
package twophase
