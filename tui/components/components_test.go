package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar("left", "right", 30)
	assert.Contains(t, out, "left")
	assert.Contains(t, out, "right")
	assert.LessOrEqual(t, lipgloss.Width(out), 30)
}

func TestRenderStatusBarTooNarrow(t *testing.T) {
	out := RenderStatusBar("a long left side", "right", 10)
	assert.NotContains(t, out, "right")
}

func TestRenderHeaderSubtitle(t *testing.T) {
	out := RenderHeader("Rolodex", "3 records")
	assert.Contains(t, out, "Rolodex")
	assert.Contains(t, out, "3 records")
	assert.Equal(t, 2, lipgloss.Height(out))
}
