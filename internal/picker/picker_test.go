package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/plprompt/pkg/glyph"
	"github.com/dkoosis/plprompt/pkg/style"
)

func testRegistry() *glyph.Registry {
	return glyph.NewRegistry(glyph.WithModes(
		glyph.Mode{Name: "alpha", Separator: ">", Thin: "|"},
		glyph.Mode{Name: "beta", Separator: ")", Thin: "/"},
		glyph.Mode{Name: "gamma", Separator: "]", Thin: "\\"},
	))
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestNew_PlacesCursorOnCurrent(t *testing.T) {
	t.Parallel()

	m := New(testRegistry(), "beta")
	assert.Equal(t, 1, m.cursor)
	assert.Len(t, m.modes, 3)

	m = New(testRegistry(), "unknown")
	assert.Equal(t, 0, m.cursor)
}

func TestUpdate_MovesCursorWithinBounds(t *testing.T) {
	t.Parallel()

	m := New(testRegistry(), "")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m, _ = send(t, m, runeKey('j'), tea.KeyMsg{Type: tea.KeyDown}, runeKey('j'))
	assert.Equal(t, 2, m.cursor)

	m, _ = send(t, m, runeKey('k'))
	assert.Equal(t, 1, m.cursor)
}

func TestUpdate_EnterChoosesMode(t *testing.T) {
	t.Parallel()

	m := New(testRegistry(), "")
	m, cmd := send(t, m, runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	chosen, ok := m.Chosen()
	assert.True(t, ok)
	assert.Equal(t, "beta", chosen)
	assert.Empty(t, m.View())
}

func TestUpdate_QuitWithoutChoice(t *testing.T) {
	t.Parallel()

	m := New(testRegistry(), "gamma")
	m, cmd := send(t, m, runeKey('q'))
	require.NotNil(t, cmd)

	_, ok := m.Chosen()
	assert.False(t, ok)
}

func TestView_ListsEveryMode(t *testing.T) {
	t.Parallel()

	view := New(testRegistry(), "beta").View()
	for _, name := range []string{"alpha", "beta", "gamma", "Choose a glyph mode", "quit"} {
		assert.Contains(t, view, name)
	}
	assert.Contains(t, view, "▸")
}

func TestPreview_UsesModeSeparator(t *testing.T) {
	t.Parallel()

	mode := glyph.Mode{Name: "x", Separator: "#"}
	out := Preview(mode)
	assert.Equal(t, len(previewBlocks), strings.Count(out, "#"))
	assert.Contains(t, out, "~/src")
}

func TestColor_MapsBaseNamesToPaletteIndices(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("6"), Color(style.Cyan))
	assert.Equal(t, lipgloss.Color("1"), Color(style.Red))
	assert.Equal(t, lipgloss.Color("15"), Color(style.IntenseWhite))
	assert.Equal(t, lipgloss.Color(style.Emerald), Color(style.Emerald))
}
