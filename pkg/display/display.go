// Package display renders stations, departures and connections for a terminal.
package display

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/travigo/mvg/pkg/config"
)

const fallbackLineColor = "#ffffff"

func ColorProfile(option config.ColorOption) termenv.Profile {
	switch option {
	case config.ColorTrueColor:
		return termenv.TrueColor
	case config.ColorNo:
		return termenv.Ascii
	default:
		return termenv.ANSI
	}
}

type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer

	// Location is used for every clock time printed.
	Location *time.Location

	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	warningStyle lipgloss.Style
	liveStyle    lipgloss.Style
}

func NewPrinter(out io.Writer, option config.ColorOption) *Printer {
	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(ColorProfile(option))

	return &Printer{
		out:          out,
		renderer:     renderer,
		Location:     time.Local,
		headerStyle:  renderer.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		mutedStyle:   renderer.NewStyle().Foreground(lipgloss.Color("240")),
		warningStyle: renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		liveStyle:    renderer.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// LineLabel renders a line label on its CSS background colour. Unparseable
// colours fall back to white, and the text colour is picked for contrast.
func (p *Printer) LineLabel(label string, background string) string {
	color, err := colorful.Hex(background)
	if err != nil {
		background = fallbackLineColor
		color, _ = colorful.Hex(fallbackLineColor)
	}

	foreground := "#000000"
	if lightness, _, _ := color.Lab(); lightness < 0.6 {
		foreground = "#ffffff"
	}

	return p.renderer.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(foreground)).
		Bold(true).
		Render(" " + label + " ")
}

// Clock formats t like "%_H:%M", with a space padded hour.
func (p *Printer) Clock(t time.Time) string {
	t = t.In(p.Location)
	return fmt.Sprintf("%2d:%02d", t.Hour(), t.Minute())
}

func (p *Printer) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) Error(err error) {
	p.println(p.warningStyle.Render("Error: " + err.Error()))
}
