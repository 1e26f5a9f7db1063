package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/chemstack-labs/chemparse/internal/chem"
	"github.com/chemstack-labs/chemparse/internal/cli/output"
)

// expansionResult is the JSON shape of one expanded formula.
type expansionResult struct {
	Line     int    `json:"line"`
	Formula  string `json:"formula"`
	Expanded string `json:"expanded"`
}

// NewExpandCommand creates the expand command.
func NewExpandCommand() *cobra.Command {
	var outPath string
	var watch bool

	cmd := &cobra.Command{
		Use:   "expand <input>",
		Short: "Expand formulas into space-separated element lists",
		Long: `Expand every formula in the input file (one per line): multipliers
are applied and parenthesized groups are unrolled, producing one
space-separated element per atom. The whole file is validated first;
any unbalanced line is reported and aborts the run.`,
		Example: `  # Expand a formulas file to stdout
  chemparse expand formulas.txt

  # Write expansions to a file and reprocess on every change
  chemparse expand formulas.txt -o expanded.txt --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, args[0], outPath, watch)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write expansions to this file instead of stdout")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and reprocess the input on change")

	return cmd
}

func runExpand(cmd *cobra.Command, path, outPath string, watch bool) error {
	cmdCtx := NewCommandContext(cmd)

	if err := processExpand(cmdCtx, path, outPath); err != nil {
		if !watch {
			return err
		}
		cmdCtx.Renderer.Error(err.Error())
	}
	if watch {
		return watchInput(cmd, cmdCtx.Renderer, path, func() error {
			return processExpand(cmdCtx, path, outPath)
		})
	}
	return nil
}

func processExpand(cmdCtx *CommandContext, path, outPath string) error {
	r := cmdCtx.Renderer

	lines, err := readLines(path)
	if err != nil {
		return err
	}

	// Validation gate: the whole file must pass before any expansion,
	// so the output keeps 1:1 line correspondence with the input.
	bad := 0
	if ok := chem.ValidateLines(lines, func(line int) {
		r.Error(fmt.Sprintf("Wrong formula in line %d", line))
		bad++
	}); !ok {
		return fmt.Errorf("%d of %d lines are not balanced", bad, len(lines))
	}

	results := make([]expansionResult, 0, len(lines))
	for i, formula := range lines {
		expanded, err := chem.Expand(formula)
		if err != nil {
			return fmt.Errorf("expanding line %d: %w", i+1, err)
		}
		results = append(results, expansionResult{Line: i + 1, Formula: formula, Expanded: expanded})
	}

	if outPath != "" {
		var b strings.Builder
		for _, res := range results {
			b.WriteString(res.Expanded)
			b.WriteString("\n")
		}
		if err := os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		r.Success(fmt.Sprintf("%d expansions written to %s", len(results), outPath))
		return nil
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case output.ModeMarkdown:
		for _, res := range results {
			r.Println(output.FormatKeyValue(res.Formula, res.Expanded))
		}
	default:
		for _, res := range results {
			r.Printf("%s => %s\n", res.Formula, res.Expanded)
		}
	}

	return nil
}

// watchInput reprocesses the input file whenever it changes. It watches
// the containing directory because editors commonly replace files on
// save.
func watchInput(cmd *cobra.Command, r *output.Renderer, path string, process func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	r.Muted(fmt.Sprintf("watching %s (ctrl-c to stop)", path))

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evAbs, err := filepath.Abs(event.Name)
			if err != nil || evAbs != abs {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := process(); err != nil {
				r.Error(err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Error(err.Error())
		}
	}
}
