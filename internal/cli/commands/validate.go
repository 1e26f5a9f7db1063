package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chemstack-labs/chemparse/internal/chem"
	"github.com/chemstack-labs/chemparse/internal/cli/output"
)

// validateOutput is the JSON shape of a validation run.
type validateOutput struct {
	Valid        bool  `json:"valid"`
	TotalLines   int   `json:"total_lines"`
	InvalidLines []int `json:"invalid_lines"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input>",
		Short: "Check formulas for balanced parentheses",
		Long: `Check every formula in the input file (one per line) for balanced
parentheses. Each failing line is reported with its 1-based line number.`,
		Example: `  # Validate a formulas file
  chemparse validate formulas.txt

  # Machine-readable report
  chemparse validate formulas.txt --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	lines, err := readLines(path)
	if err != nil {
		return err
	}

	bad := make([]int, 0)
	ok := chem.ValidateLines(lines, func(line int) {
		bad = append(bad, line)
	})

	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		if err := enc.Encode(validateOutput{Valid: ok, TotalLines: len(lines), InvalidLines: bad}); err != nil {
			return err
		}
	} else {
		for _, line := range bad {
			r.Error(fmt.Sprintf("Wrong formula in line %d", line))
		}
		if ok {
			r.Success(fmt.Sprintf("%d formulas, all balanced", len(lines)))
		}
	}

	if !ok {
		return fmt.Errorf("%d of %d lines are not balanced", len(bad), len(lines))
	}
	return nil
}
