package game

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enterLine(m Model, line string) (Model, tea.Cmd) {
	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestModel_ApplyMove(t *testing.T) {
	b := loadBoard(t, puzzle4)
	m := NewModel(b, filepath.Join(t.TempDir(), "out.txt"))

	m, cmd := enterLine(m, "1,2=3")
	assert.Nil(t, cmd)
	assert.Equal(t, 3, b.At(0, 1))
	assert.Equal(t, "value inserted", m.status)
	assert.False(t, m.statusErr)
	assert.Empty(t, m.input.Value(), "input resets after submit")
}

func TestModel_ClearMove(t *testing.T) {
	b := loadBoard(t, puzzle4)
	require.NoError(t, b.Apply(0, 1, 3))
	m := NewModel(b, filepath.Join(t.TempDir(), "out.txt"))

	m, _ = enterLine(m, "1,2=0")
	assert.Equal(t, 0, b.At(0, 1))
	assert.Equal(t, "value cleared", m.status)
}

func TestModel_IllegalMove(t *testing.T) {
	b := loadBoard(t, puzzle4)
	m := NewModel(b, filepath.Join(t.TempDir(), "out.txt"))

	m, cmd := enterLine(m, "1,1=2")
	assert.Nil(t, cmd)
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "pre-given")
	assert.Equal(t, 1, b.At(0, 0), "board untouched")
}

func TestModel_BadFormat(t *testing.T) {
	b := loadBoard(t, puzzle4)
	m := NewModel(b, filepath.Join(t.TempDir(), "out.txt"))

	m, _ = enterLine(m, "garbage")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "wrong command format")
}

func TestModel_SaveAndQuit(t *testing.T) {
	b := loadBoard(t, puzzle4)
	require.NoError(t, b.Apply(0, 1, 3))
	path := filepath.Join(t.TempDir(), "out.txt")
	m := NewModel(b, path)

	m, cmd := enterLine(m, "0,0=0")
	require.NotNil(t, cmd)
	assert.True(t, m.Saved())
	assert.NoError(t, m.SaveErr())

	saved, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, saved.At(0, 1))
}

func TestModel_SaveOnCompletion(t *testing.T) {
	b := loadBoard(t, "2\n-1 0\n0 0")
	require.NoError(t, b.Apply(0, 1, 2))
	require.NoError(t, b.Apply(1, 0, 2))
	path := filepath.Join(t.TempDir(), "out.txt")
	m := NewModel(b, path)

	m, cmd := enterLine(m, "2,2=1")
	require.NotNil(t, cmd)
	assert.True(t, m.Completed())
	assert.True(t, m.Saved())
	assert.Equal(t, "game completed!", m.status)
}

func TestModel_EscAbandons(t *testing.T) {
	b := loadBoard(t, puzzle4)
	path := filepath.Join(t.TempDir(), "out.txt")
	m := NewModel(b, path)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m = next.(Model)
	assert.False(t, m.Saved())
	assert.Empty(t, m.View(), "no view after quitting")
	assert.NoFileExists(t, path)
}

func TestModel_View(t *testing.T) {
	b := loadBoard(t, puzzle4)
	m := NewModel(b, filepath.Join(t.TempDir(), "out.txt"))

	view := m.View()
	assert.Contains(t, view, "Latin Square")
	assert.Contains(t, view, "(1)")
	assert.Contains(t, view, "save and quit")
	assert.Equal(t, 4, strings.Count(view, "("), "four pre-given cells")
}
