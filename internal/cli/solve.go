package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	twophase "github.com/toughmanshawn/rob-twophase"
	"github.com/toughmanshawn/rob-twophase/internal/storage"
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble>",
	Short: "Solve a scramble",
	Long: `Solve a scramble given in standard face-turn notation.

Examples:
  twophase solve "R U R' U' F2 D L"
  twophase solve --max-length 20 --timeout 5s "B2 L D' F R2 U"
  twophase solve --record "R U2 F' L D"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

var (
	solveMaxLength int
	solveTimeout   time.Duration
	solveWorkers   int
	solveRecord    bool
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveMaxLength, "max-length", 0, "Stop at the first solution of at most this many moves")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", time.Second, "Time budget per solve")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 0, "Parallel search workers (0 = full fan-out)")
	solveCmd.Flags().BoolVar(&solveRecord, "record", false, "Store the solve in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble := strings.Join(args, " ")

	solver, err := newSolver()
	if err != nil {
		return err
	}

	sol, err := solver.Solve(context.Background(), scramble)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	fmt.Println(titleStyle.Render("Scramble: ") + scramble)
	fmt.Println(titleStyle.Render("Solution: ") + moveStyle.Render(sol.String()))
	fmt.Println(statusStyle.Render(fmt.Sprintf(
		"%d moves (%d in phase one), found in %s",
		len(sol.Moves), sol.Phase1, sol.Duration.Round(time.Millisecond),
	)))

	if solveRecord {
		id, err := recordSolve(scramble, sol)
		if err != nil {
			return err
		}
		fmt.Println(statusStyle.Render("Recorded as " + id))
	}
	return nil
}

// newSolver builds a solver from flags and environment defaults.
func newSolver() (*twophase.Solver, error) {
	maxLen := solveMaxLength
	if maxLen == 0 {
		maxLen = envDefaults.MaxLength
	}
	workers := solveWorkers
	if workers == 0 {
		workers = envDefaults.Workers
	}

	opts := []twophase.Option{twophase.WithTimeout(solveTimeout)}
	if maxLen > 0 {
		opts = append(opts, twophase.WithMaxLength(maxLen))
	}
	if workers > 0 {
		opts = append(opts, twophase.WithWorkers(workers))
	}

	verbosef("generating tables...")
	started := time.Now()
	solver, err := twophase.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	verbosef("tables ready in %s", time.Since(started).Round(time.Millisecond))
	return solver, nil
}

func recordSolve(scramble string, sol *twophase.Solution) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	return repo.Create(scramble, sol.String(), len(sol.Moves), sol.Phase1, sol.Duration)
}

func openDB() (*storage.DB, error) {
	if path := getDBPath(); path != "" {
		return storage.Open(path)
	}
	return storage.OpenDefault()
}
