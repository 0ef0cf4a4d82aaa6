package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codevoice/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b", Disabled: true}, {Label: "c"}})
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, m.Selected, "disabled items are skipped")

	m, _ = m.Update(keyPress('k'))
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 0, m.Selected)
}

func TestMenuEnterRunsAction(t *testing.T) {
	called := ""
	m := NewMenu([]MenuItem{
		{Label: "a", Action: func() tea.Cmd { called = "a"; return nil }},
		{Label: "b", Action: func() tea.Cmd { called = "b"; return nil }},
	})
	m, _ = m.Update(keyPress('j'))
	_, _ = m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "b", called)
}

func TestMenuViewScrollsToSelection(t *testing.T) {
	items := make([]MenuItem, 10)
	for i := range items {
		items[i] = MenuItem{Label: string(rune('a' + i))}
	}
	m := NewMenu(items)
	m.Select(8)

	view := m.View(20, 3, true)
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, view, "i")
	assert.NotContains(t, view, "a ")
}

func TestMenuSelectOutOfRange(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}})
	m.Select(5)
	assert.Equal(t, 0, m.Selected)
	m.Select(-1)
	assert.Equal(t, 0, m.Selected)
}

func TestButtonBusyIgnoresPress(t *testing.T) {
	pressed := 0
	b := NewButton("Run", "Running...", theme.RunButton, func() tea.Cmd {
		pressed++
		return nil
	})
	b.Focused = true

	b, _ = b.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, pressed)

	b.Busy = true
	_, _ = b.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, pressed)
	assert.Contains(t, b.View(), "Running...")
}

func TestButtonUnfocusedIgnoresPress(t *testing.T) {
	pressed := false
	b := NewButton("Run", "Running...", theme.RunButton, func() tea.Cmd {
		pressed = true
		return nil
	})
	_, _ = b.Update(specialKey(tea.KeyEnter))
	assert.False(t, pressed)
	assert.Contains(t, b.View(), "Run")
}

func TestEditorReportsChanges(t *testing.T) {
	e := NewEditor()
	e.SetValue("def f():")
	assert.Equal(t, "def f():", e.Value())

	e, _, changed := e.Update(keyPress('x'))
	assert.True(t, changed)
	assert.Equal(t, "xdef f():", e.Value())

	_, _, changed = e.Update(specialKey(tea.KeyUp))
	assert.False(t, changed)
}

func TestEditorBlurredIgnoresInput(t *testing.T) {
	e := NewEditor()
	e.Blur()
	e, _, changed := e.Update(keyPress('x'))
	assert.False(t, changed)
	assert.Equal(t, "", e.Value())
}

func TestRatioBar(t *testing.T) {
	assert.Equal(t, 0.0, NewRatioBar("x", 1, 0, 20).Percent())
	assert.Equal(t, 0.5, NewRatioBar("x", 1, 2, 20).Percent())
	assert.Equal(t, 1.0, NewRatioBar("x", 5, 2, 20).Percent())
	assert.Contains(t, NewRatioBar("/execute", 3, 4, 40).View(), "3/4")
}
