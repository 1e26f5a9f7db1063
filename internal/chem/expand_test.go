package chem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		want    string
	}{
		{"empty formula", "", ""},
		{"single element", "H", "H"},
		{"two-letter element", "Mg", "Mg"},
		{"plain compound reverses top level", "NaCl", "Cl Na"},
		{"multiplier", "H2O", "O H H"},
		{"group with multiplier", "Mg(OH)2", "O H O H Mg"},
		{"hydroxide", "Ca(OH)2", "O H O H Ca"},
		{"multi-digit multiplier", "H12", strings.TrimSpace(strings.Repeat("H ", 12))},
		{"multiplier on two-letter element", "Mg3", "Mg Mg Mg"},
		{"zero multiplier removes token", "H0", ""},
		{"empty group", "()", ""},
		{"empty group with multiplier", "()2", ""},
		{"zero group multiplier removes group", "(OH)0", ""},
		{"bare leading multiplier is ignored", "2H", "H"},
		{"non-element shape is accepted", "Xyz2", "Xyz Xyz"},
		{"nested groups", "A(B(C)2D)3", "B C C D B C C D B C C D A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.formula)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_GroupInteriorKeepsOrder(t *testing.T) {
	// Interior tokens of a group stay left-to-right; only the top-level
	// sequence comes out reversed.
	got, err := Expand("(SO4)3")
	require.NoError(t, err)
	assert.Equal(t, "S O O O O S O O O O S O O O O", got)
}

func TestExpand_OutputShape(t *testing.T) {
	got, err := Expand("Fe2(SO4)3")
	require.NoError(t, err)

	assert.NotContains(t, got, "(")
	assert.NotContains(t, got, ")")
	assert.False(t, strings.ContainsAny(got, "0123456789"), "expansion must carry no digits")
	assert.Equal(t, strings.TrimSpace(got), got, "no leading or trailing whitespace")

	counts := map[string]int{}
	for _, sym := range strings.Fields(got) {
		counts[sym]++
	}
	assert.Equal(t, map[string]int{"Fe": 2, "S": 3, "O": 12}, counts)
}

func TestExpand_GrowsPastInitialBuffer(t *testing.T) {
	got, err := Expand("H999")
	require.NoError(t, err)

	fields := strings.Fields(got)
	require.Len(t, fields, 999)
	for _, f := range fields {
		require.Equal(t, "H", f)
	}
	assert.Greater(t, len(got), initialOutputCapacity)
}

func TestExpand_BalancedNeverErrors(t *testing.T) {
	// The validation gate admits exactly the balanced formulas; none of
	// them may trip the stack contract inside Expand.
	formulas := []string{
		"", "H2O", "Mg(OH)2", "K4(ON(SO3)2)2", "2H", "H0", "()", "()2",
		"((()))", "Ca(OH)2(H2O)5", "Xyz123",
	}
	for _, f := range formulas {
		require.True(t, IsBalanced(f), "fixture %q must be balanced", f)
		_, err := Expand(f)
		assert.NoError(t, err, "Expand(%q)", f)
	}
}

func TestExpand_NoStateAcrossCalls(t *testing.T) {
	first, err := Expand("Mg(OH)2")
	require.NoError(t, err)

	// An interleaved unrelated expansion must not disturb a repeat run.
	_, err = Expand("K4(ON(SO3)2)2")
	require.NoError(t, err)

	second, err := Expand("Mg(OH)2")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
