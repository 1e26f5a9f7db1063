package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used by the board view.
type Styles struct {
	Title  lipgloss.Style
	Fixed  lipgloss.Style
	User   lipgloss.Style
	Grid   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the default board styling.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Fixed:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		User:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Grid:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Model is the bubbletea model for an interactive puzzle session.
// Moves are entered as "i,j=val" with 1-based coordinates; "i,j=0"
// clears a cell and "0,0=0" saves and quits. The board is saved to
// savePath on completion or explicit save-and-quit.
type Model struct {
	board    *Board
	input    textinput.Model
	styles   Styles
	savePath string

	status    string
	statusErr bool
	saved     bool
	saveErr   error
	quitting  bool
}

// NewModel creates a puzzle session for board, saving to savePath.
func NewModel(board *Board, savePath string) Model {
	ti := textinput.New()
	ti.Placeholder = "i,j=val"
	ti.CharLimit = 16
	ti.Width = 20
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		board:    board,
		input:    ti,
		styles:   DefaultStyles(),
		savePath: savePath,
	}
}

// Saved reports whether the board was written to the save path.
func (m Model) Saved() bool { return m.saved }

// SaveErr returns the error from the final save attempt, if any.
func (m Model) SaveErr() error { return m.saveErr }

// SavePath returns the path the board is saved to.
func (m Model) SavePath() string { return m.savePath }

// Completed reports whether the board was filled.
func (m Model) Completed() bool { return m.board.Complete() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// Abandon without saving.
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses and executes the entered command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	var row, col, val int
	if _, err := fmt.Sscanf(line, "%d,%d=%d", &row, &col, &val); err != nil {
		m.status = fmt.Sprintf("wrong command format %q, use i,j=val with numbers in [0..%d]", line, m.board.Size)
		m.statusErr = true
		return m, nil
	}

	if row == 0 && col == 0 && val == 0 {
		return m.saveAndQuit("saved")
	}

	if err := m.board.Apply(row-1, col-1, val); err != nil {
		m.status = strings.TrimPrefix(err.Error(), "game: ")
		m.statusErr = true
		return m, nil
	}

	m.statusErr = false
	if val == 0 {
		m.status = "value cleared"
	} else {
		m.status = "value inserted"
	}

	if m.board.Complete() {
		return m.saveAndQuit("game completed!")
	}
	return m, nil
}

func (m Model) saveAndQuit(status string) (tea.Model, tea.Cmd) {
	m.saveErr = m.board.SaveFile(m.savePath)
	m.saved = m.saveErr == nil
	m.status = status
	m.statusErr = false
	m.quitting = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Latin Square"))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		fmt.Sprintf("i,j=val insert · i,j=0 clear · 0,0=0 save and quit · numbering 1..%d · esc abandon", m.board.Size)))
	b.WriteString("\n")

	return b.String()
}

// renderBoard draws the grid; pre-given values appear in parentheses.
func (m Model) renderBoard() string {
	var b strings.Builder
	border := m.styles.Grid.Render("+" + strings.Repeat("-----+", m.board.Size))

	b.WriteString(border)
	b.WriteString("\n")
	for r := 0; r < m.board.Size; r++ {
		for c := 0; c < m.board.Size; c++ {
			b.WriteString(m.styles.Grid.Render("|"))
			switch {
			case m.board.Fixed(r, c):
				b.WriteString(m.styles.Fixed.Render(fmt.Sprintf(" (%d) ", m.board.At(r, c))))
			case m.board.At(r, c) != 0:
				b.WriteString(m.styles.User.Render(fmt.Sprintf("  %-2d ", m.board.At(r, c))))
			default:
				b.WriteString("     ")
			}
		}
		b.WriteString(m.styles.Grid.Render("|"))
		b.WriteString("\n")
		b.WriteString(border)
		b.WriteString("\n")
	}
	return b.String()
}
