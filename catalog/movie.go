package catalog

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

const (
	// UploadLayout is the fixed UTC layout of the created_at field.
	UploadLayout = "2006-01-02T15:04:05.000Z"

	// DateLayout renders an upload date as "MMM dd, yyyy".
	DateLayout = "Jan 02, 2006"

	// DateTimeLayout renders an upload date with its local time of day.
	DateTimeLayout = "Jan 02, 2006 3:04 PM"
)

// Movie is a single catalog entry. It is only built through NewMovie or Parse
// and cannot be changed afterwards.
type Movie struct {
	title      string
	year       mo.Option[int]
	durationMs int64
	uploadDate mo.Option[string]
}

// Catalog is the ordered list of movies for one run.
type Catalog []Movie

// NewMovie creates a movie from its source values
func NewMovie(title string, year mo.Option[int], durationMs int64, uploadDate mo.Option[string]) Movie {
	return Movie{
		title:      title,
		year:       year,
		durationMs: durationMs,
		uploadDate: uploadDate,
	}
}

// Title returns the title exactly as given by the source
func (m Movie) Title() string {
	return m.title
}

// Year returns the release year, if the source had one
func (m Movie) Year() mo.Option[int] {
	return m.year
}

// DurationMs returns the duration in milliseconds
func (m Movie) DurationMs() int64 {
	return m.durationMs
}

// UploadDate returns the raw created_at value, if the source had one
func (m Movie) UploadDate() mo.Option[string] {
	return m.uploadDate
}

// Runtime formats the duration as "<hours> Hr <minutes> Min". Seconds are
// dropped, never rounded.
func (m Movie) Runtime() string {
	seconds := m.durationMs / 1000
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%d Hr %d Min", hours, minutes)
}

// UploadTime parses the upload date. It reports false when the date is absent
// or does not match UploadLayout.
func (m Movie) UploadTime() (time.Time, bool) {
	raw, ok := m.uploadDate.Get()
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(UploadLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormattedDate renders the upload date's calendar day in UTC.
func (m Movie) FormattedDate() mo.Option[string] {
	t, ok := m.UploadTime()
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(t.UTC().Format(DateLayout))
}

// FormattedDateTime renders the upload date with its time of day in loc.
// A nil loc means local time.
func (m Movie) FormattedDateTime(loc *time.Location) mo.Option[string] {
	t, ok := m.UploadTime()
	if !ok {
		return mo.None[string]()
	}
	if loc == nil {
		loc = time.Local
	}
	return mo.Some(t.In(loc).Format(DateTimeLayout))
}
