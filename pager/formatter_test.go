package pager

import (
	"strings"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"github.com/s0up4200/movies/catalog"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		movie    catalog.Movie
		expected string
	}{
		{
			name: "All fields",
			movie: catalog.NewMovie("Magic in the Moonlight", mo.Some(2014), 5857856,
				mo.Some("2019-06-09T20:53:41.103Z")),
			expected: "Title: Magic in the Moonlight\n" +
				"Year Released: 2014\n" +
				"Runtime: 1 Hr 37 Min\n" +
				"Upload Date: Jun 09, 2019",
		},
		{
			name:  "No year",
			movie: catalog.NewMovie("Untitled", mo.None[int](), 5857856, mo.Some("2019-06-09T20:53:41.103Z")),
			expected: "Title: Untitled\n" +
				"Runtime: 1 Hr 37 Min\n" +
				"Upload Date: Jun 09, 2019",
		},
		{
			name:  "No upload date",
			movie: catalog.NewMovie("Untitled", mo.Some(1999), 60000, mo.None[string]()),
			expected: "Title: Untitled\n" +
				"Year Released: 1999\n" +
				"Runtime: 0 Hr 1 Min",
		},
		{
			name:  "Title with a tab",
			movie: catalog.NewMovie("A\tB", mo.None[int](), 60000, mo.None[string]()),
			expected: "Title: A\tB\n" +
				"Runtime: 0 Hr 1 Min",
		},
		{
			name:  "Title with an embedded newline",
			movie: catalog.NewMovie("Line1\nLonger line 2", mo.None[int](), 60000, mo.None[string]()),
			expected: "Title: Line1\n" +
				"Longer line 2\n" +
				"Runtime: 0 Hr 1 Min",
		},
		{
			name:  "Unparseable upload date",
			movie: catalog.NewMovie("Untitled", mo.None[int](), 60000, mo.Some("June 9th")),
			expected: "Title: Untitled\n" +
				"Runtime: 0 Hr 1 Min",
		},
	}

	f := NewFormatter(FormatOptions{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Format(tt.movie))
		})
	}
}

func TestFormatShowTime(t *testing.T) {
	f := NewFormatter(FormatOptions{ShowTime: true, Location: time.UTC})
	m := catalog.NewMovie("Movie", mo.None[int](), 0, mo.Some("2019-06-09T20:53:41.103Z"))

	assert.Contains(t, f.Format(m), "Upload Date: Jun 09, 2019 8:53 PM")
}

func TestFormatColor(t *testing.T) {
	m := catalog.NewMovie("Movie", mo.Some(2014), 0, mo.Some("2019-06-09T20:53:41.103Z"))

	colored := NewFormatter(FormatOptions{Color: true}).Format(m)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "Title: Movie")

	tabbed := catalog.NewMovie("A\tB\nC", mo.None[int](), 0, mo.None[string]())
	coloredTitle := NewFormatter(FormatOptions{Color: true}).Format(tabbed)
	assert.Contains(t, coloredTitle, "Title: A\tB")
	assert.NotContains(t, coloredTitle, "Title: A\tB ")

	plain := NewFormatter(FormatOptions{Color: false}).Format(m)
	assert.NotContains(t, plain, "\x1b[")
	assert.Len(t, strings.Split(plain, "\n"), 4)
}
