package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(120, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 18, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(4))
}

func TestRenderHeaderContainsParts(t *testing.T) {
	h := RenderHeader("Workspace", "localhost:8000", 100)
	assert.Contains(t, h, "CodeVoice")
	assert.Contains(t, h, "Workspace")
	assert.Contains(t, h, "localhost:8000")
	assert.Equal(t, HeaderHeight, lipgloss.Height(h))
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Ctrl+R", Description: "Run"}, {Key: "Ctrl+G", Description: "Hint"}}, 100)
	assert.Contains(t, f, "Ctrl+R")
	assert.Contains(t, f, "Hint")
	assert.Equal(t, FooterHeight, lipgloss.Height(f))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Longe…", Truncate("Longest Palindrome", 6))
	assert.Equal(t, "", Truncate("x", 0))
}

func TestTailLines(t *testing.T) {
	s := strings.Join([]string{"a", "b", "c", "d"}, "\n")
	assert.Equal(t, "c\nd", TailLines(s, 2))
	assert.Equal(t, s, TailLines(s, 10))
	assert.Equal(t, "", TailLines(s, 0))
}
