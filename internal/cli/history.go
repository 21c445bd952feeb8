package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/toughmanshawn/rob-twophase/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of solves to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("No recorded solves. Record one with: twophase solve --record <scramble>")
		return nil
	}

	for _, s := range solves {
		fmt.Println(titleStyle.Render(s.SolveID))
		fmt.Println(statusStyle.Render(fmt.Sprintf(
			"  %s | %d moves (%d in phase one) | %dms",
			s.CreatedAt.Local().Format(time.DateTime), s.MoveCount, s.Phase1Len, s.DurationMs,
		)))
		fmt.Println("  Scramble: " + s.Scramble)
		fmt.Println("  Solution: " + moveStyle.Render(s.Solution))
	}
	return nil
}
