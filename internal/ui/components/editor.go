package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codevoice/internal/ui/theme"
)

// editorMaxLines bounds the buffer; textarea refuses new lines past it.
const editorMaxLines = 9999

// Editor wraps bubbles/textarea as a code editor.
type Editor struct {
	Model textarea.Model
}

// NewEditor creates an empty, focused editor.
func NewEditor() Editor {
	ta := textarea.New()
	ta.Placeholder = "# Select a problem to start coding"
	ta.ShowLineNumbers = true
	ta.MaxHeight = editorMaxLines
	ta.CharLimit = 0
	ta.Prompt = ""

	styles := textarea.DefaultDarkStyles()
	styles.Focused.CursorLine = lipgloss.NewStyle().Background(theme.BgCard)
	styles.Focused.LineNumber = lipgloss.NewStyle().Foreground(theme.TextDim)
	styles.Blurred.LineNumber = lipgloss.NewStyle().Foreground(theme.Border)
	ta.SetStyles(styles)
	ta.Focus()

	return Editor{Model: ta}
}

// Init returns the initial command.
func (e Editor) Init() tea.Cmd {
	return textarea.Blink
}

// Update forwards msg to the textarea and reports whether the buffer
// changed.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd, bool) {
	before := e.Model.Value()
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd, e.Model.Value() != before
}

// View renders the editor.
func (e Editor) View() string {
	return e.Model.View()
}

// Value returns the current buffer.
func (e Editor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the buffer and moves the cursor to the top.
func (e *Editor) SetValue(s string) {
	e.Model.SetValue(s)
	e.Model.MoveToBegin()
}

// SetSize resizes the editor.
func (e *Editor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// Focus gives the editor keyboard focus.
func (e *Editor) Focus() tea.Cmd {
	return e.Model.Focus()
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	e.Model.Blur()
}

// Focused reports whether the editor has focus.
func (e Editor) Focused() bool {
	return e.Model.Focused()
}
