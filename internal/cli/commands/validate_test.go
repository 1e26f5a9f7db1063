package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemstack-labs/chemparse/internal/cli/testutil"
)

func TestValidate_AllBalanced(t *testing.T) {
	path := testutil.WriteFormulasFile(t, "H2O", "Mg(OH)2", "NaCl")

	out, errOut, err := execute(t, NewValidateCommand(), path)
	require.NoError(t, err)

	assert.Contains(t, out, "3 formulas, all balanced")
	assert.Empty(t, errOut)
}

func TestValidate_ReportsBadLines(t *testing.T) {
	path := testutil.WriteFormulasFile(t, "H2O", "Mg(OH", "(SO4)3", ")H(")

	_, errOut, err := execute(t, NewValidateCommand(), path)
	require.Error(t, err)

	assert.Contains(t, errOut, "Wrong formula in line 2")
	assert.Contains(t, errOut, "Wrong formula in line 4")
	assert.NotContains(t, errOut, "line 1")
	assert.NotContains(t, errOut, "line 3")
	assert.Contains(t, err.Error(), "2 of 4 lines")
}

func TestValidate_JSON(t *testing.T) {
	t.Setenv("CHEMPARSE_OUTPUT", "json")
	path := testutil.WriteFormulasFile(t, "H2O", "Mg(OH")

	out, _, err := execute(t, NewValidateCommand(), path)
	require.Error(t, err)

	assert.Contains(t, out, `"valid": false`)
	assert.Contains(t, out, `"total_lines": 2`)
	assert.Contains(t, out, `"invalid_lines"`)
}

func TestValidate_MissingFile(t *testing.T) {
	_, _, err := execute(t, NewValidateCommand(), "does-not-exist.txt")
	assert.Error(t, err)
}
