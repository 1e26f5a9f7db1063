package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemstack-labs/chemparse/internal/cli/testutil"
)

func TestElements_Text(t *testing.T) {
	t.Setenv("CHEMPARSE_TABLE_PATH", testutil.WritePeriodicTable(t))
	t.Setenv("CHEMPARSE_OUTPUT", "text")

	out, _, err := execute(t, NewElementsCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "Periodic Table (9 elements)")
	assert.Contains(t, out, "Mg")
	assert.Contains(t, out, "SYMBOL", "go-pretty upper-cases headers")
}

func TestElements_Markdown(t *testing.T) {
	t.Setenv("CHEMPARSE_TABLE_PATH", testutil.WritePeriodicTable(t))
	t.Setenv("CHEMPARSE_OUTPUT", "markdown")

	out, _, err := execute(t, NewElementsCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "| Cl |")
	testutil.AssertNoANSI(t, out)
}

func TestElements_JSON(t *testing.T) {
	t.Setenv("CHEMPARSE_TABLE_PATH", testutil.WritePeriodicTable(t))
	t.Setenv("CHEMPARSE_OUTPUT", "json")

	out, _, err := execute(t, NewElementsCommand())
	require.NoError(t, err)

	assert.Contains(t, out, `"symbol": "H"`)
	assert.Contains(t, out, `"atomic_number": 17`)
}

func TestElements_WarnsOnSkippedSymbols(t *testing.T) {
	path := testutil.WriteFile(t, "table.txt", "H 1\nQuad 4\n")
	t.Setenv("CHEMPARSE_TABLE_PATH", path)

	_, errOut, err := execute(t, NewElementsCommand())
	require.NoError(t, err)

	assert.Contains(t, errOut, `"Quad"`)
}
