package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPopOrder(t *testing.T) {
	s := NewStack()
	s.PushToken(Token{Symbol: "H"})
	s.PushToken(Token{Symbol: "O"})
	require.Equal(t, 2, s.Len())

	e, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, KindToken, e.Kind)
	assert.Equal(t, "O", e.Token.Symbol)

	e, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "H", e.Token.Symbol)
	assert.True(t, s.IsEmpty())
}

func TestStack_PopEmpty(t *testing.T) {
	s := NewStack()
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmptyStack)

	// The stack stays usable after a failed pop.
	s.PushChar('(')
	e, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, KindChar, e.Kind)
	assert.Equal(t, byte('('), e.Char)
}

func TestStack_PeekKind(t *testing.T) {
	s := NewStack()
	_, err := s.PeekKind()
	assert.ErrorIs(t, err, ErrEmptyStack)

	s.PushChar('(')
	kind, err := s.PeekKind()
	require.NoError(t, err)
	assert.Equal(t, KindChar, kind)
	assert.Equal(t, 1, s.Len(), "peek must not remove the entry")

	s.PushToken(Token{Symbol: "Fe"})
	kind, err = s.PeekKind()
	require.NoError(t, err)
	assert.Equal(t, KindToken, kind)
}

func TestStack_SizeTracksEntries(t *testing.T) {
	s := NewStack()
	for i := 0; i < 100; i++ {
		s.PushToken(Token{Symbol: "H"})
	}
	assert.Equal(t, 100, s.Len())
	for i := 0; i < 100; i++ {
		_, err := s.Pop()
		require.NoError(t, err)
	}
	assert.True(t, s.IsEmpty())
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmptyStack)
}
