package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the field a catalog is ordered by.
type SortKey int

const (
	// SortNone keeps the catalog in source order
	SortNone SortKey = iota
	// SortTitle orders by title, ascending byte order
	SortTitle
	// SortYear orders by release year, newest first. A missing year counts as 0.
	SortYear
	// SortRuntime orders by duration, shortest first
	SortRuntime
	// SortUploadDate orders by the raw created_at string, latest first
	SortUploadDate
)

// String returns the canonical command-line name of the key
func (k SortKey) String() string {
	switch k {
	case SortTitle:
		return "title"
	case SortYear:
		return "year"
	case SortRuntime:
		return "runtime"
	case SortUploadDate:
		return "date"
	default:
		return ""
	}
}

// SortKeyNames lists the canonical key names accepted by ParseSortKey.
var SortKeyNames = []string{"title", "year", "runtime", "date"}

// ParseSortKey maps a command-line name to a SortKey. The empty string means
// no sorting was requested.
func ParseSortKey(name string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return SortNone, nil
	case "title":
		return SortTitle, nil
	case "year":
		return SortYear, nil
	case "runtime", "duration":
		return SortRuntime, nil
	case "date", "upload-date", "uploaded", "created_at":
		return SortUploadDate, nil
	default:
		return SortNone, fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownSortKey, name, strings.Join(SortKeyNames, ", "))
	}
}

// Sort returns a reordered copy of c. With SortNone the copy keeps the input
// order whatever reversed says. Records that compare equal keep their relative
// order.
//
// Forward directions: title A-Z, year newest first (absent counts as 0),
// runtime shortest first, upload date newest first (absent counts as "").
// reversed flips the direction of the chosen key.
func Sort(c Catalog, key SortKey, reversed bool) Catalog {
	sorted := make(Catalog, len(c))
	copy(sorted, c)

	less := comparator(key)
	if less == nil || len(sorted) < 2 {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if reversed {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// comparator returns the forward ordering for key, or nil for SortNone
func comparator(key SortKey) func(a, b Movie) bool {
	switch key {
	case SortTitle:
		return func(a, b Movie) bool {
			return a.title < b.title
		}
	case SortYear:
		return func(a, b Movie) bool {
			return a.year.OrElse(0) > b.year.OrElse(0)
		}
	case SortRuntime:
		return func(a, b Movie) bool {
			return a.durationMs < b.durationMs
		}
	case SortUploadDate:
		return func(a, b Movie) bool {
			return a.uploadDate.OrElse("") > b.uploadDate.OrElse("")
		}
	default:
		return nil
	}
}
