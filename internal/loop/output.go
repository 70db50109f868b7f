package loop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	bannerText = "Welcome to the REPL calculator! Type 'exit' to quit"
	exitText   = "Exiting the calculator..."
)

// printer writes session output, styled when the writer supports color
type printer struct {
	w     io.Writer
	color bool

	// bannerStyle for the bold welcome line
	bannerStyle lipgloss.Style
	// resultStyle for successful results
	resultStyle lipgloss.Style
	// errorStyle for rejected input
	errorStyle lipgloss.Style
	// dimStyle for the exit notice
	dimStyle lipgloss.Style
}

// newPrinter creates a printer whose color profile is detected from w.
// noColor forces plain output.
func newPrinter(w io.Writer, noColor bool) *printer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &printer{
		w:     w,
		color: r.ColorProfile() != termenv.Ascii,
		bannerStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		resultStyle: r.NewStyle().
			Foreground(lipgloss.Color("42")),
		errorStyle: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		dimStyle: r.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

func (p *printer) line(style lipgloss.Style, text string) {
	if p.color {
		text = style.Render(text)
	}
	fmt.Fprintln(p.w, text)
}

// Banner prints the welcome line naming the exit keyword
func (p *printer) Banner() {
	p.line(p.bannerStyle, bannerText)
}

// Result prints the result of a successful calculation
func (p *printer) Result(v float64) {
	p.line(p.resultStyle, FormatResult(v))
}

// Error prints a rejected line's error message verbatim
func (p *printer) Error(err error) {
	p.line(p.errorStyle, err.Error())
}

// Exit prints the exit notice
func (p *printer) Exit() {
	p.line(p.dimStyle, exitText)
}
