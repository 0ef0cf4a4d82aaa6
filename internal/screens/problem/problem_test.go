package problem

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codevoice/internal/catalog"
	"github.com/abhisek/codevoice/internal/router"
)

func sampleProblem() catalog.Problem {
	return catalog.Problem{
		ID:          1,
		Title:       "Two Sum",
		Difficulty:  catalog.DifficultyEasy,
		Description: "Return indices of the two numbers that add up to target.",
		Template:    "def two_sum(nums, target):\n    pass",
		TestCase:    "print(two_sum([2, 7], 9))",
	}
}

func TestRenderIncludesDescriptionAndCode(t *testing.T) {
	out := ansi.Strip(Render(sampleProblem(), "python", 80))

	assert.Contains(t, out, "1. Two Sum")
	assert.Contains(t, out, "Easy")
	assert.Contains(t, out, "add up to target")
	assert.Contains(t, out, "STARTER CODE")
	assert.Contains(t, out, "two_sum")
	assert.Contains(t, out, "# Test Case")
}

func TestRenderWithoutTemplate(t *testing.T) {
	p := catalog.Problem{ID: 2, Title: "Empty"}
	out := ansi.Strip(Render(p, "python", 80))
	assert.Contains(t, out, "2. Empty")
	assert.NotContains(t, out, "STARTER CODE")
}

func TestRenderTestCaseOnly(t *testing.T) {
	p := catalog.Problem{ID: 3, Title: "Harness", TestCase: "print(solve())"}
	out := ansi.Strip(Render(p, "python", 80))
	assert.Contains(t, out, "STARTER CODE")
	assert.Contains(t, out, "print(solve())")
}

func TestHighlightUnknownLanguageKeepsCode(t *testing.T) {
	out := ansi.Strip(highlight("x = 1", "no-such-language"))
	assert.Contains(t, out, "x = 1")
}

func TestEscPops(t *testing.T) {
	s := New(sampleProblem(), "python")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestTitleAndView(t *testing.T) {
	s := New(sampleProblem(), "python")
	assert.Equal(t, "1. Two Sum", s.Title())
	assert.NotEmpty(t, s.View(100, 30))
}
