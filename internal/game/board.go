// Package game implements the Latin-square puzzle: board loading and
// saving, move legality rules, and an interactive terminal UI.
//
// A puzzle file starts with the board size n (1..9) followed by n*n cell
// values in row order. Negative values mark pre-given cells that cannot
// be modified; zero marks an empty cell. The goal is to fill the board so
// every value 1..n appears exactly once per row and per column.
package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MaxSize is the largest supported board dimension.
const MaxSize = 9

// Board file errors.
var (
	// ErrBadSize indicates a missing or out-of-range board size header.
	ErrBadSize = errors.New("game: invalid board size")
	// ErrBadValue indicates a cell value outside [-size, size].
	ErrBadValue = errors.New("game: board contains invalid values")
	// ErrExtraData indicates trailing data after the last expected cell.
	ErrExtraData = errors.New("game: file contains more data than expected")
)

// Move legality errors, in the order the rules are checked.
var (
	// ErrOutOfRange indicates a position or value outside the board range.
	ErrOutOfRange = errors.New("game: position or value outside the allowed range")
	// ErrFixedCell indicates an attempt to modify a pre-given cell.
	ErrFixedCell = errors.New("game: illegal to modify a pre-given cell")
	// ErrCellOccupied indicates an insert into a non-empty cell.
	ErrCellOccupied = errors.New("game: cell is already occupied")
	// ErrValueExhausted indicates the value already appears size times.
	ErrValueExhausted = errors.New("game: value already appears the maximum number of times")
	// ErrRowConflict indicates the value already exists in the row.
	ErrRowConflict = errors.New("game: value already exists in this row")
	// ErrColumnConflict indicates the value already exists in the column.
	ErrColumnConflict = errors.New("game: value already exists in this column")
)

// Board is a Latin-square puzzle state. Cells store signed values:
// negative magnitudes are pre-given and immutable, zero is empty.
// Rows and columns are 0-based in this API; the TUI presents them
// 1-based.
type Board struct {
	Size  int
	cells [][]int
}

// Load reads a puzzle from r: the size header, then Size*Size cell
// values. Returns ErrBadSize, ErrBadValue or ErrExtraData for malformed
// files.
func Load(r io.Reader) (*Board, error) {
	var size int
	if _, err := fmt.Fscan(r, &size); err != nil || size <= 0 || size > MaxSize {
		return nil, ErrBadSize
	}

	b := &Board{Size: size, cells: make([][]int, size)}
	for i := range b.cells {
		b.cells[i] = make([]int, size)
		for j := range b.cells[i] {
			var v int
			if _, err := fmt.Fscan(r, &v); err != nil {
				return nil, fmt.Errorf("game: reading board values: %w", err)
			}
			if v < -size || v > size {
				return nil, ErrBadValue
			}
			b.cells[i][j] = v
		}
	}

	var extra int
	if _, err := fmt.Fscan(r, &extra); err == nil {
		return nil, ErrExtraData
	}

	return b, nil
}

// LoadFile loads a puzzle from the file at path.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("game: open puzzle file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// At returns the magnitude of the cell at (row, col); 0 means empty.
func (b *Board) At(row, col int) int {
	v := b.cells[row][col]
	if v < 0 {
		return -v
	}
	return v
}

// Fixed reports whether the cell at (row, col) is pre-given.
func (b *Board) Fixed(row, col int) bool {
	return b.cells[row][col] < 0
}

// Check validates inserting val at (row, col) without applying it.
// val == 0 means clearing the cell. Checks run in a fixed order so the
// first violated rule is the one reported.
func (b *Board) Check(row, col, val int) error {
	if row < 0 || row >= b.Size || col < 0 || col >= b.Size || val < 0 || val > b.Size {
		return ErrOutOfRange
	}
	if b.Fixed(row, col) {
		return ErrFixedCell
	}
	if val == 0 {
		return nil
	}
	if b.At(row, col) != 0 {
		return ErrCellOccupied
	}

	occurrences := 0
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.At(r, c) == val {
				occurrences++
			}
		}
	}
	if occurrences >= b.Size {
		return ErrValueExhausted
	}

	for c := 0; c < b.Size; c++ {
		if b.At(row, c) == val {
			return ErrRowConflict
		}
	}
	for r := 0; r < b.Size; r++ {
		if b.At(r, col) == val {
			return ErrColumnConflict
		}
	}

	return nil
}

// Apply checks and executes a move: val == 0 clears (row, col), any
// other value fills it.
func (b *Board) Apply(row, col, val int) error {
	if err := b.Check(row, col, val); err != nil {
		return err
	}
	b.cells[row][col] = val
	return nil
}

// Complete reports whether the board has no empty cells.
func (b *Board) Complete() bool {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.cells[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Write serializes the board in the puzzle file format, preserving the
// negative encoding of pre-given cells.
func (b *Board) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d\n", b.Size); err != nil {
		return err
	}
	for _, row := range b.cells {
		for j, v := range row {
			if j > 0 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// SaveFile writes the board to the file at path.
func (b *Board) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("game: create save file: %w", err)
	}
	if err := b.Write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("game: writing board: %w", err)
	}
	return f.Close()
}

// OutputName derives the save path for a puzzle file: the same directory
// with an "out-" prefix on the file name.
func OutputName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "out-"+base)
}
