// Package output provides mode-aware rendering for CLI commands.
//
// The renderer adapts to where output is going: styled text on a
// terminal, markdown when piped (agent-friendly), or JSON when requested
// explicitly.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

// OutputMode is an alias for Mode kept for readability at call sites
// that talk about "the output mode" rather than "the mode".
type OutputMode = Mode

// Supported output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Styles groups the lipgloss styles used for styled text output.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Tests use this to force or suppress styled output.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: defaultStyles(),
	}
}

// EffectiveMode resolves ModeAuto: text on a terminal, markdown when
// piped.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		if r.isTTY {
			return ModeText
		}
		return ModeMarkdown
	}
	return r.mode
}

// Writer returns the destination for primary output (useful for JSON
// encoders and table writers).
func (r *Renderer) Writer() io.Writer { return r.out }

// ErrWriter returns the destination for diagnostics.
func (r *Renderer) ErrWriter() io.Writer { return r.errOut }

// Styles returns the renderer's style set.
func (r *Renderer) Styles() Styles { return r.styles }

// styled reports whether ANSI styling should be applied. Styling is
// reserved for text mode on a real terminal, and respects NO_COLOR.
func (r *Renderer) styled() bool {
	return r.isTTY && r.EffectiveMode() == ModeText && !termenv.EnvNoColor()
}

// Println writes a line of primary output.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted primary output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Header writes a section header: styled in text mode, markdown header
// otherwise.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		return
	}
	if r.styled() {
		r.Println(r.styles.Header.Render(text))
		return
	}
	r.Println(text)
}

// Success writes a success message to primary output.
func (r *Renderer) Success(msg string) {
	if r.styled() {
		msg = r.styles.Success.Render(msg)
	}
	r.Println(msg)
}

// Muted writes a de-emphasized message to primary output.
func (r *Renderer) Muted(msg string) {
	if r.styled() {
		msg = r.styles.Muted.Render(msg)
	}
	r.Println(msg)
}

// Info writes a de-emphasized diagnostic to the error writer, keeping
// primary output clean for pipelines.
func (r *Renderer) Info(msg string) {
	if r.styled() {
		msg = r.styles.Muted.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// Error writes an error message to the diagnostic writer.
func (r *Renderer) Error(msg string) {
	if r.styled() {
		msg = r.styles.Error.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// Warning writes a warning message to the diagnostic writer.
func (r *Renderer) Warning(msg string) {
	if r.styled() {
		msg = r.styles.Warning.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// FormatHeader returns a markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a markdown key-value bullet line.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s**: %s", key, value)
}
