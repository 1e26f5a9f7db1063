package chem

import "errors"

// ErrEmptyStack indicates a pop or peek on an empty stack. It signals a
// programming-contract violation (malformed group structure that slipped
// past the validation gate), not a user-input error.
var ErrEmptyStack = errors.New("chem: pop from empty stack")

// EntryKind tags which payload of an Entry is valid.
type EntryKind int

const (
	// KindToken marks an entry holding a parsed element or group-marker
	// token; used by expansion.
	KindToken EntryKind = iota
	// KindChar marks an entry holding a raw character; used by the
	// parentheses validator.
	KindChar
)

// Entry is a tagged variant over a Token and a raw character. The Kind
// tag determines which payload is valid; never both.
type Entry struct {
	Kind  EntryKind
	Token Token
	Char  byte
}

// Stack is a LIFO of tagged entries, backed by a growable slice so push
// and pop stay O(1) without per-node allocation. The zero value is an
// empty, ready-to-use stack. A Stack and its entries live for a single
// formula's processing and are not retained across formulas.
type Stack struct {
	entries []Entry
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of live entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the stack holds no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Push adds an entry on top of the stack.
func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// PushToken pushes a token entry.
func (s *Stack) PushToken(t Token) {
	s.Push(Entry{Kind: KindToken, Token: t})
}

// PushChar pushes a raw-character entry.
func (s *Stack) PushChar(c byte) {
	s.Push(Entry{Kind: KindChar, Char: c})
}

// Pop removes and returns the top entry. Returns ErrEmptyStack if the
// stack is empty; it never returns a poisoned entry.
func (s *Stack) Pop() (Entry, error) {
	if len(s.entries) == 0 {
		return Entry{}, ErrEmptyStack
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, nil
}

// PeekKind returns the kind tag of the top entry without removing it.
// Returns ErrEmptyStack if the stack is empty.
func (s *Stack) PeekKind() (EntryKind, error) {
	if len(s.entries) == 0 {
		return 0, ErrEmptyStack
	}
	return s.entries[len(s.entries)-1].Kind, nil
}
