package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/chemstack-labs/chemparse/internal/chem"
	"github.com/chemstack-labs/chemparse/internal/cli/output"
	"github.com/chemstack-labs/chemparse/internal/ptable"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive formula session",
		Long: `Start an interactive session: type a formula and get its expansion and
proton count back. Dot-commands: .help, .table, .quit.`,
		Example: `  # Start the REPL
  chemparse repl

  # With a custom periodic table
  chemparse repl --table my_table.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	table, err := cmdCtx.LoadTable()
	if err != nil {
		return err
	}

	// History lives next to the periodic table file
	historyFile := filepath.Join(filepath.Dir(cmdCtx.Cfg.TablePath), ".chemparse_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "chemparse> ",
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r.Printf("chemparse REPL (table: %s, %d elements)\n", cmdCtx.Cfg.TablePath, table.Len())
	r.Println("Type a formula, or .help for commands, .quit to exit")
	r.Println("")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(r, table, cmdCtx.Cfg.TablePath, line); quit {
				break
			}
			continue
		}

		evalFormula(r, table, line)
	}

	return nil
}

// evalFormula validates, expands and counts a single formula.
func evalFormula(r *output.Renderer, table *ptable.Table, formula string) {
	if !chem.IsBalanced(formula) {
		r.Error("wrong formula: unbalanced parentheses")
		return
	}

	expanded, err := chem.Expand(formula)
	if err != nil {
		r.Error(err.Error())
		return
	}

	total, unknown := chem.CountProtons(expanded, table)
	for _, sym := range unknown {
		r.Warning(fmt.Sprintf("unknown element %q", sym))
	}
	r.Printf("=> %s\n", expanded)
	r.Printf("protons: %d\n", total)
}

// handleDotCommand executes a dot-command. Returns true when the REPL
// should exit.
func handleDotCommand(r *output.Renderer, table *ptable.Table, tablePath, line string) bool {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(r)

	case ".table":
		r.Printf("table: %s (%d elements)\n", tablePath, table.Len())
		for _, e := range table.Elements() {
			r.Printf("  %-3s %d\n", e.Symbol, e.AtomicNumber)
		}

	default:
		r.Error(fmt.Sprintf("Unknown command: %s (type .help for commands)", line))
	}
	return false
}

func printREPLHelp(r *output.Renderer) {
	r.Println(`
Commands:
  .help           Show this help message
  .table          Show the loaded periodic table
  .quit / .exit   Exit the REPL

Tips:
  - Type a formula (e.g. Mg(OH)2) to expand it and count protons
  - Use arrow keys to navigate history
`)
}

// newREPLCompleter creates a readline completer for dot-commands.
func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".table"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
