package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/chemstack-labs/chemparse/internal/cli/output"
	"github.com/chemstack-labs/chemparse/internal/ptable"
)

// elementInfo is the JSON shape of one periodic table entry.
type elementInfo struct {
	Symbol       string `json:"symbol"`
	AtomicNumber int    `json:"atomic_number"`
}

// NewElementsCommand creates the elements command.
func NewElementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "Show the loaded periodic table",
		Long: `Display the configured periodic table, sorted by atomic number.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Show the periodic table
  chemparse elements

  # As JSON
  chemparse elements --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runElements(cmd)
		},
	}
}

func runElements(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	tbl, err := cmdCtx.LoadTable()
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return elementsJSON(tbl, r)
	case output.ModeMarkdown:
		return elementsTable(tbl, r, true)
	default:
		r.Header(1, fmt.Sprintf("Periodic Table (%d elements)", tbl.Len()))
		return elementsTable(tbl, r, false)
	}
}

func elementsTable(tbl *ptable.Table, r *output.Renderer, markdown bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Symbol"})

	for _, e := range tbl.Elements() {
		t.AppendRow(table.Row{e.AtomicNumber, e.Symbol})
	}

	if markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}

func elementsJSON(tbl *ptable.Table, r *output.Renderer) error {
	elements := make([]elementInfo, 0, tbl.Len())
	for _, e := range tbl.Elements() {
		elements = append(elements, elementInfo{Symbol: e.Symbol, AtomicNumber: e.AtomicNumber})
	}

	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(elements)
}
