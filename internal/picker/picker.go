// Package picker is an interactive list for trying out glyph modes.
package picker

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/plprompt/pkg/glyph"
	"github.com/dkoosis/plprompt/pkg/style"
)

// previewBlocks are the sample segments drawn for every mode.
var previewBlocks = []struct {
	text string
	bg   string
}{
	{" venv ", style.Emerald},
	{" user✸host ", style.Violet},
	{" ~/src ", style.Blue},
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	nameStyle     = lipgloss.NewStyle().Width(11)
	selectedStyle = nameStyle.Bold(true)
)

// Model is the bubbletea model of the picker.
type Model struct {
	modes    []glyph.Mode
	cursor   int
	chosen   string
	quitting bool
	keys     keyMap
	help     help.Model
}

// New creates a picker over the registry's modes with the cursor on
// current, when it names a known mode.
func New(reg *glyph.Registry, current string) Model {
	m := Model{keys: defaultKeyMap(), help: help.New()}
	for i, name := range reg.Names() {
		mode, _ := reg.Lookup(name)
		m.modes = append(m.modes, mode)
		if name == current {
			m.cursor = i
		}
	}
	return m
}

// Chosen returns the mode name picked by the user.
func (m Model) Chosen() (string, bool) {
	return m.chosen, m.chosen != ""
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Choose):
			if len(m.modes) > 0 {
				m.chosen = m.modes[m.cursor].Name
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.modes)-1 {
				m.cursor++
			}
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Choose a glyph mode"))
	sb.WriteString("\n")
	for i, mode := range m.modes {
		prefix, name := "  ", nameStyle.Render(mode.Name)
		if i == m.cursor {
			prefix, name = cursorStyle.Render("▸ "), selectedStyle.Render(mode.Name)
		}
		sb.WriteString(prefix + name + Preview(mode) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Preview draws sample segments joined by the mode's separators.
func Preview(mode glyph.Mode) string {
	var sb strings.Builder
	for i, b := range previewBlocks {
		block := lipgloss.NewStyle().
			Foreground(Color(style.Contrast(b.bg))).
			Background(Color(b.bg))
		sb.WriteString(block.Render(b.text))

		arrow := lipgloss.NewStyle().Foreground(Color(b.bg))
		if i+1 < len(previewBlocks) {
			arrow = arrow.Background(Color(previewBlocks[i+1].bg))
		}
		sb.WriteString(arrow.Render(mode.Separator))
	}
	return sb.String()
}

// Color converts a palette colour to a lipgloss colour. Base colour names
// become terminal palette indices; hex values pass through.
func Color(c string) lipgloss.Color {
	if idx, ok := style.ANSIIndex(c); ok {
		return lipgloss.Color(strconv.Itoa(idx))
	}
	return lipgloss.Color(c)
}

// Run shows the picker on the given terminal streams and returns the chosen
// mode name, or "" when the user quit without choosing.
func Run(reg *glyph.Registry, current string, in io.Reader, out io.Writer) (string, error) {
	program := tea.NewProgram(New(reg, current), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	chosen, _ := final.(Model).Chosen()
	return chosen, nil
}
