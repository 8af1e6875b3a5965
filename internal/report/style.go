package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors
var (
	orange  = lipgloss.Color("#ff8800")
	green   = lipgloss.Color("#50fa7b")
	midGray = lipgloss.Color("#cccccc")
)

// styles groups the lipgloss styles for one output writer.
type styles struct {
	banner   lipgloss.Style
	label    lipgloss.Style
	greeting lipgloss.Style
}

// newStyles binds the report styles to w. When styled is false every style
// renders its input unchanged.
func newStyles(w io.Writer, styled bool) styles {
	r := lipgloss.NewRenderer(w)
	if !styled {
		r.SetColorProfile(termenv.Ascii)
		plain := r.NewStyle()
		return styles{banner: plain, label: plain, greeting: plain}
	}
	r.SetColorProfile(termenv.ANSI256)

	return styles{
		banner:   r.NewStyle().Foreground(orange).Bold(true),
		label:    r.NewStyle().Foreground(midGray),
		greeting: r.NewStyle().Foreground(green),
	}
}
