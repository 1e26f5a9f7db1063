package chem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemstack-labs/chemparse/internal/ptable"
)

func testTable(t *testing.T) *ptable.Table {
	t.Helper()
	table, err := ptable.Load(strings.NewReader("H 1\nO 8\nMg 12"))
	require.NoError(t, err)
	return table
}

func TestCountProtons(t *testing.T) {
	table := testTable(t)

	total, unknown := CountProtons("O H O H Mg", table)
	assert.Equal(t, 30, total)
	assert.Empty(t, unknown)
}

func TestCountProtons_DoesNotNeedSpaces(t *testing.T) {
	table := testTable(t)

	// Tokenization follows the greedy shape rule over alphabetic runs,
	// not the separators.
	total, unknown := CountProtons("OHH", table)
	assert.Equal(t, 10, total)
	assert.Empty(t, unknown)
}

func TestCountProtons_UnknownSymbols(t *testing.T) {
	table := testTable(t)

	total, unknown := CountProtons("O Zz H Zz", table)
	assert.Equal(t, 9, total, "unknown symbols contribute nothing")
	assert.Equal(t, []string{"Zz", "Zz"}, unknown)
}

func TestCountProtons_Empty(t *testing.T) {
	table := testTable(t)

	total, unknown := CountProtons("", table)
	assert.Zero(t, total)
	assert.Empty(t, unknown)
}

func TestCountProtons_AfterExpansion(t *testing.T) {
	table := testTable(t)

	expanded, err := Expand("Mg(OH)2")
	require.NoError(t, err)

	total, unknown := CountProtons(expanded, table)
	assert.Equal(t, 30, total)
	assert.Empty(t, unknown)
}
