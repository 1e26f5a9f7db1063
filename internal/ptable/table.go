// Package ptable loads and queries the periodic table of elements.
//
// The table is read once from a flat file of whitespace-separated
// `<symbol> <atomicNumber>` records and is immutable afterwards, so it
// can be shared freely by everything that needs symbol lookups.
package ptable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

const (
	// MaxSymbolLen is the longest accepted chemical symbol.
	MaxSymbolLen = 3
	// MaxElements bounds the table size; the standard periodic table has
	// 118 elements. Records past the cap are ignored.
	MaxElements = 118
)

// Element is one periodic-table record.
type Element struct {
	Symbol       string
	AtomicNumber int
}

// Table is a loaded periodic table: an ordered element list, unique by
// symbol, sorted ascending by atomic number. Read-only after Load.
type Table struct {
	elements []Element
	bySymbol map[string]int

	// Skipped records the raw symbols rejected during loading (longer
	// than MaxSymbolLen), for the caller to report.
	Skipped []string
}

// Load reads whitespace-separated `<symbol> <atomicNumber>` records from
// r until EOF. Symbols longer than MaxSymbolLen are skipped and recorded
// in Skipped rather than failing the load; a duplicate symbol keeps its
// first record. A table with fewer than MaxElements entries is valid.
func Load(r io.Reader) (*Table, error) {
	t := &Table{bySymbol: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for len(t.elements) < MaxElements && scanner.Scan() {
		symbol := scanner.Text()

		if !scanner.Scan() {
			return nil, fmt.Errorf("ptable: symbol %q has no atomic number", symbol)
		}
		var atomicNumber int
		if _, err := fmt.Sscanf(scanner.Text(), "%d", &atomicNumber); err != nil {
			return nil, fmt.Errorf("ptable: invalid atomic number %q for symbol %q", scanner.Text(), symbol)
		}

		if len(symbol) > MaxSymbolLen {
			t.Skipped = append(t.Skipped, symbol)
			continue
		}
		if _, exists := t.bySymbol[symbol]; exists {
			continue
		}
		t.bySymbol[symbol] = atomicNumber
		t.elements = append(t.elements, Element{Symbol: symbol, AtomicNumber: atomicNumber})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ptable: reading table: %w", err)
	}

	// Documented post-load step; lookups go through the map either way.
	sort.Slice(t.elements, func(i, j int) bool {
		return t.elements[i].AtomicNumber < t.elements[j].AtomicNumber
	})

	return t, nil
}

// LoadFile loads a periodic table from the file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ptable: open table file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Lookup returns the atomic number for symbol and whether it is present.
func (t *Table) Lookup(symbol string) (int, bool) {
	n, ok := t.bySymbol[symbol]
	return n, ok
}

// Len returns the number of loaded elements.
func (t *Table) Len() int {
	return len(t.elements)
}

// Elements returns the loaded records sorted ascending by atomic number.
// The returned slice is shared; callers must not modify it.
func (t *Table) Elements() []Element {
	return t.elements
}
