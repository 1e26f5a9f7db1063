package chem

import "github.com/chemstack-labs/chemparse/internal/ptable"

// CountProtons sums the atomic numbers of every element in an already
// expanded formula, looked up in table. It re-tokenizes contiguous
// alphabetic runs with the same greedy 3/2/1-letter rule as expansion,
// so it does not depend on the separating spaces Expand emits.
//
// Symbols absent from the table contribute nothing to the total and are
// returned in unknown, in encounter order with duplicates preserved, so
// the caller can diagnose them. Counting never fails.
func CountProtons(expanded string, table *ptable.Table) (total int, unknown []string) {
	for i := 0; i < len(expanded); {
		if !isAlpha(expanded[i]) {
			i++
			continue
		}
		sym, w := ReadSymbol(expanded, i)
		i += w
		n, ok := table.Lookup(sym)
		if !ok {
			unknown = append(unknown, sym)
			continue
		}
		total += n
	}
	return total, unknown
}
