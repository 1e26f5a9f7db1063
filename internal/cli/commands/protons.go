package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chemstack-labs/chemparse/internal/chem"
	"github.com/chemstack-labs/chemparse/internal/cli/output"
)

// protonResult is the JSON shape of one counted formula.
type protonResult struct {
	Line     int      `json:"line"`
	Formula  string   `json:"formula"`
	Expanded string   `json:"expanded"`
	Protons  int      `json:"protons"`
	Unknown  []string `json:"unknown,omitempty"`
}

// NewProtonsCommand creates the protons command.
func NewProtonsCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "protons <input>",
		Short: "Count protons in each formula",
		Long: `Expand every formula in the input file and sum the atomic numbers of
its atoms using the configured periodic table. The whole file is
validated first; any unbalanced line is reported and aborts the run.
Symbols missing from the table count as zero and are reported.`,
		Example: `  # Count protons for a formulas file
  chemparse protons formulas.txt

  # Use a custom periodic table
  chemparse protons formulas.txt --table my_table.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProtons(cmd, args[0], outPath)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write proton counts to this file instead of stdout")

	return cmd
}

func runProtons(cmd *cobra.Command, path, outPath string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	table, err := cmdCtx.LoadTable()
	if err != nil {
		return err
	}

	lines, err := readLines(path)
	if err != nil {
		return err
	}

	// Validation gate: the whole file must pass before any counting,
	// so the output keeps 1:1 line correspondence with the input.
	bad := 0
	if ok := chem.ValidateLines(lines, func(line int) {
		r.Error(fmt.Sprintf("Wrong formula in line %d", line))
		bad++
	}); !ok {
		return fmt.Errorf("%d of %d lines are not balanced", bad, len(lines))
	}

	results := make([]protonResult, 0, len(lines))
	for i, formula := range lines {
		expanded, err := chem.Expand(formula)
		if err != nil {
			return fmt.Errorf("expanding line %d: %w", i+1, err)
		}
		total, unknown := chem.CountProtons(expanded, table)
		for _, sym := range unknown {
			r.Warning(fmt.Sprintf("line %d: unknown element %q", i+1, sym))
		}
		results = append(results, protonResult{
			Line:     i + 1,
			Formula:  formula,
			Expanded: expanded,
			Protons:  total,
			Unknown:  unknown,
		})
	}

	if outPath != "" {
		// One count per line, nothing else: the output file format is a
		// single non-negative integer per input formula.
		var b strings.Builder
		for _, res := range results {
			fmt.Fprintf(&b, "%d\n", res.Protons)
		}
		if err := os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		r.Success(fmt.Sprintf("%d counts written to %s", len(results), outPath))
		return nil
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case output.ModeMarkdown:
		for _, res := range results {
			r.Println(output.FormatKeyValue(res.Formula, fmt.Sprintf("%d %s (%s)", res.Protons, protonsLabel(res.Protons), res.Expanded)))
		}
	default:
		for _, res := range results {
			r.Printf("%s => %s (%d %s)\n", res.Formula, res.Expanded, res.Protons, protonsLabel(res.Protons))
		}
	}

	return nil
}

func protonsLabel(n int) string {
	if n == 1 {
		return "proton"
	}
	return "protons"
}
