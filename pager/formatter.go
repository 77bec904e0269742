package pager

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/s0up4200/movies/catalog"
)

// Field colours of the display form, as ANSI colour indexes.
var (
	TitleColor   = lipgloss.Color("6") // cyan
	YearColor    = lipgloss.Color("3") // yellow
	RuntimeColor = lipgloss.Color("1") // red
	DateColor    = lipgloss.Color("5") // magenta
)

// FormatOptions controls how a movie is rendered
type FormatOptions struct {
	Color    bool
	ShowTime bool
	Location *time.Location
}

// Formatter renders movies in their four-line display form
type Formatter struct {
	title    lipgloss.Style
	year     lipgloss.Style
	runtime  lipgloss.Style
	date     lipgloss.Style
	showTime bool
	location *time.Location
}

// NewFormatter creates a formatter. Colour output is decided here, not by
// inspecting the destination.
func NewFormatter(options FormatOptions) *Formatter {
	renderer := lipgloss.NewRenderer(io.Discard)
	if options.Color {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Formatter{
		title:    fieldStyle(renderer, TitleColor),
		year:     fieldStyle(renderer, YearColor),
		runtime:  fieldStyle(renderer, RuntimeColor),
		date:     fieldStyle(renderer, DateColor),
		showTime: options.ShowTime,
		location: options.Location,
	}
}

// Format renders a movie without a trailing newline. The year and upload date
// lines are left out when absent.
func (f *Formatter) Format(movie catalog.Movie) string {
	var lines []string

	lines = append(lines, colorize(f.title, fmt.Sprintf("Title: %s", movie.Title())))

	if year, ok := movie.Year().Get(); ok {
		lines = append(lines, colorize(f.year, fmt.Sprintf("Year Released: %d", year)))
	}

	lines = append(lines, colorize(f.runtime, fmt.Sprintf("Runtime: %s", movie.Runtime())))

	if date, ok := f.uploadDate(movie); ok {
		lines = append(lines, colorize(f.date, fmt.Sprintf("Upload Date: %s", date)))
	}

	return strings.Join(lines, "\n")
}

// fieldStyle colours text without converting tabs
func fieldStyle(renderer *lipgloss.Renderer, color lipgloss.Color) lipgloss.Style {
	return renderer.NewStyle().
		Foreground(color).
		TabWidth(lipgloss.NoTabConversion)
}

// colorize styles each line of text on its own so lipgloss never pads lines
// to a common width. The text itself is left as given.
func colorize(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) uploadDate(movie catalog.Movie) (string, bool) {
	if f.showTime {
		return movie.FormattedDateTime(f.location).Get()
	}
	return movie.FormattedDate().Get()
}
