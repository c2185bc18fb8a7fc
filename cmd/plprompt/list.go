package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dkoosis/plprompt/internal/picker"
	"github.com/dkoosis/plprompt/pkg/glyph"
	"github.com/dkoosis/plprompt/pkg/style"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// column pads s to width cells, styling it when color is on.
func column(s string, width int, st lipgloss.Style, color bool) string {
	if color {
		return st.Width(width).Render(s)
	}
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

func (a *app) modesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List glyph modes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return writeModes(a.stdout, a.resolved.Modes, a.resolved.Mode, useColor(a.stdout))
		},
	}
}

// writeModes lists every registered glyph mode with its glyphs. The
// current mode is marked with an asterisk.
func writeModes(w io.Writer, reg *glyph.Registry, current string, color bool) error {
	active := reg.Resolve(current).Name
	var sb strings.Builder
	sb.WriteString(column("MODE", 13, headerStyle, color))
	sb.WriteString(column("GLYPHS", 10, headerStyle, color))
	if color {
		sb.WriteString(headerStyle.Render("PREVIEW"))
	}
	sb.WriteString("\n")

	for _, name := range reg.Names() {
		mode, _ := reg.Lookup(name)
		label, st := "  "+name, lipgloss.NewStyle()
		if name == active {
			label, st = "* "+name, activeStyle
		}
		sb.WriteString(column(label, 13, st, color))
		glyphs := strings.Join([]string{mode.Separator, mode.Thin, mode.RightSeparator, mode.RightThinOrThin()}, " ")
		sb.WriteString(column(glyphs, 10, lipgloss.NewStyle(), color))
		if color {
			sb.WriteString(picker.Preview(mode))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (a *app) fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the effective field styles",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return writeFields(a.stdout, a.resolved.Palette, useColor(a.stdout))
		},
	}
}

// writeFields lists the palette's fields with their colors and separator.
// Fields without a background are drawn without a block.
func writeFields(w io.Writer, p *style.Palette, color bool) error {
	var sb strings.Builder
	for i, h := range []string{"FIELD", "FG", "BG", "SEP"} {
		width := 16
		if i == 0 {
			width = 18
		}
		sb.WriteString(column(h, width, headerStyle, color))
	}
	sb.WriteString("\n")

	for _, name := range p.Fields() {
		fs, _ := p.Style(name)
		sample := lipgloss.NewStyle()
		if fs.Background != "" {
			sample = sample.Background(picker.Color(fs.Background))
		}
		if fs.Foreground != "" {
			sample = sample.Foreground(picker.Color(fs.Foreground))
		}
		sb.WriteString(column(name, 18, sample, color))
		sb.WriteString(column(orDash(fs.Foreground), 16, lipgloss.NewStyle(), color))
		sb.WriteString(column(orDash(fs.Background), 16, lipgloss.NewStyle(), color))
		sep := "-"
		if fs.Separator != "" {
			sep = strconv.Quote(fs.Separator)
		}
		if color {
			sep = dimStyle.Render(sep)
		}
		sb.WriteString(sep + "\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (a *app) pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a glyph mode interactively",
		Long: `Pick shows the glyph modes with a preview and prints the chosen name:

	export POWERLINE_MODE=$(plprompt pick)`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.runPick()
		},
	}
}

func (a *app) runPick() error {
	if !isTTYReader(a.stdin) {
		return fmt.Errorf("pick needs an interactive terminal")
	}
	current := a.resolved.Modes.Resolve(a.resolved.Mode).Name
	// The picker draws on stderr so stdout carries only the chosen name.
	chosen, err := picker.Run(a.resolved.Modes, current, a.stdin, a.stderr)
	if err != nil {
		return err
	}
	if chosen == "" {
		a.logger.Debug("pick cancelled")
		return nil
	}
	_, err = fmt.Fprintln(a.stdout, chosen)
	return err
}
