package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/toughmanshawn/rob-twophase/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay [solve-id]",
	Short: "Step through a recorded solve",
	Long: `Step through a recorded solve move by move.

If no solve ID is specified, lists recent recorded solves.

Usage:
  twophase replay                # List recent solves
  twophase replay <solve-id>     # Step through a specific solve`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	// If no args, list available solves
	if len(args) == 0 {
		return listSolves(repo)
	}

	solve, err := repo.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to load solve: %w", err)
	}

	model := newReplayModel(solve)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

func listSolves(repo *storage.SolveRepository) error {
	solves, err := repo.List(20)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No recorded solves. Record one with: twophase solve --record <scramble>")
		return nil
	}

	fmt.Println("Recent solves:")
	fmt.Println()
	for _, s := range solves {
		fmt.Printf("  %s  %s  %d moves\n", s.SolveID, s.CreatedAt.Local().Format(time.DateTime), s.MoveCount)
	}
	fmt.Println()
	fmt.Println("Usage: twophase replay <solve-id>")

	return nil
}

// Replay model
type replayModel struct {
	solve     *storage.Solve
	moves     []string
	moveIndex int
	quitting  bool
}

func newReplayModel(solve *storage.Solve) *replayModel {
	return &replayModel{
		solve: solve,
		moves: strings.Fields(solve.Solution),
	}
}

func (m *replayModel) Init() tea.Cmd {
	return nil
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			if m.moveIndex < len(m.moves) {
				m.moveIndex++
			}

		case "left", "b":
			if m.moveIndex > 0 {
				m.moveIndex--
			}

		case "r":
			m.moveIndex = 0
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Solve Replay"))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(m.solve.SolveID))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Recorded: %s\n", m.solve.CreatedAt.Local().Format(time.DateTime)))
	b.WriteString("\n")

	b.WriteString("Scramble: ")
	b.WriteString(moveStyle.Render(m.solve.Scramble))
	b.WriteString("\n\n")

	// Which phase the current move belongs to
	if m.moveIndex >= len(m.moves) {
		b.WriteString(phaseStyle.Render("SOLVED"))
	} else if m.moveIndex < m.solve.Phase1Len {
		b.WriteString(phaseStyle.Render(fmt.Sprintf("Phase 1 (%d moves)", m.solve.Phase1Len)))
	} else {
		b.WriteString(phaseStyle.Render(fmt.Sprintf("Phase 2 (%d moves)", len(m.moves)-m.solve.Phase1Len)))
	}
	b.WriteString("\n\n")

	// Solution with the current move highlighted; a | marks the phase boundary.
	b.WriteString("Solution: ")
	for i, mv := range m.moves {
		if i == m.solve.Phase1Len {
			b.WriteString(statusStyle.Render("| "))
		}
		if i == m.moveIndex {
			b.WriteString(currentStyle.Render(mv))
		} else if i < m.moveIndex {
			b.WriteString(moveStyle.Render(mv))
		} else {
			b.WriteString(statusStyle.Render(mv))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Move %d/%d\n", m.moveIndex, len(m.moves)))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("SPACE/→=next  ←=back  r=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
