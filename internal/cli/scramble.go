package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate random-state scrambles",
	Long: `Generate scrambles by sampling a uniformly random reachable cube state
and solving it backwards, so every reachable state is equally likely.`,
	RunE: runScramble,
}

var scrambleCount int

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "n", 1, "Number of scrambles to generate")
}

func runScramble(cmd *cobra.Command, args []string) error {
	solver, err := newSolver()
	if err != nil {
		return err
	}

	for i := 0; i < scrambleCount; i++ {
		scr, err := solver.Scramble(context.Background())
		if err != nil {
			return fmt.Errorf("scramble failed: %w", err)
		}
		fmt.Println(moveStyle.Render(scr))
	}
	return nil
}
