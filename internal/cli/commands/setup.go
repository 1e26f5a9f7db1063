// Package commands implements the chemparse subcommands.
package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chemstack-labs/chemparse/internal/cli/config"
	"github.com/chemstack-labs/chemparse/internal/cli/output"
	"github.com/chemstack-labs/chemparse/internal/ptable"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a renderer bound to
// the command's output streams.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Renderer: r,
	}
}

// LoadTable loads the periodic table from the configured path, warning
// about any records that were skipped for over-long symbols.
func (c *CommandContext) LoadTable() (*ptable.Table, error) {
	table, err := ptable.LoadFile(c.Cfg.TablePath)
	if err != nil {
		return nil, err
	}
	for _, sym := range table.Skipped {
		c.Renderer.Warning(fmt.Sprintf("skipping element %q: symbol longer than %d characters", sym, ptable.MaxSymbolLen))
	}
	return table, nil
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back
// to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		TablePath:    getEnvOrDefault("CHEMPARSE_TABLE_PATH", config.DefaultTablePath),
		OutputFormat: getEnvOrDefault("CHEMPARSE_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("CHEMPARSE_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// readLines reads an input file one formula per line. Line endings are
// stripped; blank lines are kept so reported line numbers match the
// file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return lines, nil
}
