// Package chem implements the chemical-formula expansion engine.
//
// A formula is a compact string of element symbols, integer multipliers,
// and nested parenthesized groups, e.g. "Mg(OH)2". The package provides:
//
//   - ReadSymbol: greedy, shape-based element tokenization (1-3 letters)
//   - Stack: a tagged-entry LIFO shared by expansion and validation
//   - Expand: full atom-by-atom expansion ("Mg(OH)2" -> "O H O H Mg")
//   - IsBalanced / ValidateLines: parentheses pre-flight validation
//   - CountProtons: total atomic number of an expanded formula
//
// Callers are expected to gate every raw formula through IsBalanced (or
// ValidateLines for whole files) before handing it to Expand or
// CountProtons; the expander tolerates some malformed shapes the same way
// the validator-gated pipeline never exercises them.
//
// All processing is sequential and per-formula: no state is retained
// between formulas, and the periodic table used for counting is an
// explicit, read-only dependency.
package chem
