package catalog

import (
	"errors"
	"fmt"
)

// Common errors returned by the catalog package.
var (
	// ErrMalformedCatalog is returned for any catalog that cannot be parsed in full.
	ErrMalformedCatalog = errors.New("malformed catalog")

	// ErrUnknownSortKey is returned by ParseSortKey for an unrecognised key name.
	ErrUnknownSortKey = errors.New("unknown sort key")
)

// ParseError describes where a catalog failed to parse. It always unwraps to
// ErrMalformedCatalog.
type ParseError struct {
	Index  int    // -1 when the failure is not tied to an entry
	Key    string // member name when the catalog is an object
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("%s: %s", ErrMalformedCatalog, e.Reason)
	case e.Key != "" && e.Field != "":
		return fmt.Sprintf("%s: entry %d (%q): %s: %s", ErrMalformedCatalog, e.Index, e.Key, e.Field, e.Reason)
	case e.Key != "":
		return fmt.Sprintf("%s: entry %d (%q): %s", ErrMalformedCatalog, e.Index, e.Key, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("%s: entry %d: %s: %s", ErrMalformedCatalog, e.Index, e.Field, e.Reason)
	default:
		return fmt.Sprintf("%s: entry %d: %s", ErrMalformedCatalog, e.Index, e.Reason)
	}
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedCatalog
}
