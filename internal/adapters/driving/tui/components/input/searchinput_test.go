package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchInput_TypingUpdatesValue(t *testing.T) {
	in := NewSearchInput(nil, "Filter", "type to filter...")
	in.Focus()

	for _, r := range "grep" {
		in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "grep", in.Value())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	in := NewSearchInput(nil, "Search", "")
	require.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())

	in.Blur()
	assert.False(t, in.Focused())
}

func TestSearchInput_Reset(t *testing.T) {
	in := NewSearchInput(nil, "Search", "")
	in.SetValue("stale")

	in.Reset()

	assert.Empty(t, in.Value())
}

func TestSearchInput_ViewShowsLabel(t *testing.T) {
	in := NewSearchInput(nil, "Filter", "")
	assert.Contains(t, in.View(), "Filter")
}

func TestSearchInput_SetWidthFloor(t *testing.T) {
	in := NewSearchInput(nil, "Search", "")

	in.SetWidth(10)

	assert.Equal(t, 10, in.Width())
}
