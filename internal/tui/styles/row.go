package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// Truncate shortens s to at most width terminal cells, ending in "..." when
// there is room for it.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	tail := ellipsis
	if width <= len(ellipsis) {
		tail = ""
	}
	return ansi.Truncate(s, width, tail)
}

// Segment is one styled run of text within a list row. A nil Color uses the
// row's default foreground.
type Segment struct {
	Text  string
	Color lipgloss.TerminalColor
	Bold  bool
}

// RenderRow renders segments as a single row padded to width with a one cell
// margin on each side. Every segment is styled on its own so the selected
// background survives the reset codes lipgloss emits after each render.
func RenderRow(segments []Segment, selected bool, width int) string {
	base := lipgloss.NewStyle().Foreground(LightGray)
	if selected {
		base = base.Foreground(White).Background(SlateLight)
	}
	blank := base.UnsetForeground()

	var b strings.Builder
	b.WriteString(blank.Render(" "))

	used := 0
	for _, seg := range segments {
		st := base.Bold(seg.Bold)
		if seg.Color != nil {
			st = st.Foreground(seg.Color)
		}
		b.WriteString(st.Render(seg.Text))
		used += lipgloss.Width(seg.Text)
	}

	if pad := width - used - 2; pad > 0 {
		b.WriteString(blank.Render(strings.Repeat(" ", pad)))
	}
	b.WriteString(blank.Render(" "))
	return b.String()
}
