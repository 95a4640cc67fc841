package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the text-mode styles, bound to one output.
type Styles struct {
	Banner lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles returns styles rendering for w. With color off every style
// renders its input unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Banner: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("245")),
		Error:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// PlainStyles renders without escape sequences.
func PlainStyles() Styles {
	return NewStyles(io.Discard, false)
}
