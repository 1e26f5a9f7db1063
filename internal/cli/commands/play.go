package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chemstack-labs/chemparse/internal/game"
)

// NewPlayCommand creates the play command.
func NewPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play <game-file>",
		Short: "Play a Latin-square puzzle",
		Long: `Load a Latin-square puzzle file and play it interactively. Moves are
entered as i,j=val with 1-based coordinates; i,j=0 clears a cell and
0,0=0 saves and quits. The board is saved next to the puzzle file with
an out- prefix.`,
		Example: `  # Play a puzzle
  chemparse play puzzle.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args[0])
		},
	}
}

func runPlay(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	board, err := game.LoadFile(path)
	if err != nil {
		return err
	}

	model := game.NewModel(board, game.OutputName(path))
	program := tea.NewProgram(model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	m, ok := final.(game.Model)
	if !ok {
		return nil
	}
	if m.SaveErr() != nil {
		return fmt.Errorf("saving board: %w", m.SaveErr())
	}
	if m.Completed() {
		r.Success("game completed!")
	}
	if m.Saved() {
		r.Success(fmt.Sprintf("board saved to %s", m.SavePath()))
	}
	return nil
}
