package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/example/fixen/internal/core/room"
)

// ScreenOptions controls how boxes are drawn.
type ScreenOptions struct {
	Width   int    // total box width including the border
	Border  string // single border character
	NoColor bool
}

// Screen draws the bordered boxes every view is made of.
type Screen struct {
	out     io.Writer
	width   int
	box     lipgloss.Style
	ok      *color.Color
	warn    *color.Color
	unknown *color.Color
}

// NewScreen creates a Screen writing to out.
func NewScreen(out io.Writer, opts ScreenOptions) *Screen {
	b := opts.Border
	border := lipgloss.Border{
		Top: b, Bottom: b, Left: b, Right: b,
		TopLeft: b, TopRight: b, BottomLeft: b, BottomRight: b,
	}
	renderer := lipgloss.NewRenderer(out)

	s := &Screen{
		out:   out,
		width: opts.Width,
		box: renderer.NewStyle().
			Border(border).
			Width(opts.Width - 2).
			Align(lipgloss.Center),
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		unknown: color.New(color.FgHiBlack),
	}
	if opts.NoColor {
		s.ok.DisableColor()
		s.warn.DisableColor()
		s.unknown.DisableColor()
	}
	return s
}

// Box prints lines centered in a bordered box with one blank line of
// padding above and below.
func (s *Screen) Box(lines ...string) {
	content := "\n" + strings.Join(lines, "\n") + "\n"
	fmt.Fprintln(s.out, s.box.Render(content))
}

// Options returns menu entries as one left-aligned block so that the
// entries line up once the block is centered.
func (s *Screen) Options(entries ...string) string {
	return lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(entries, "\n"))
}

// Prompt prints the input prompt roughly under the box center.
func (s *Screen) Prompt() {
	pad := s.width/2 - len("CHOICE: ")/2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprint(s.out, strings.Repeat(" ", pad)+"CHOICE: ")
}

// Issue colours issue text by status.
func (s *Screen) Issue(text string) string {
	if room.ParseIssue(text).None() {
		return s.ok.Sprint(text)
	}
	return s.warn.Sprint(text)
}

// Muted renders text for placeholders such as unknown room types.
func (s *Screen) Muted(text string) string {
	return s.unknown.Sprint(text)
}
