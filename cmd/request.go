package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/s0up4200/movies/catalog"
)

// URL validation errors, worded for the operator.
var (
	ErrInvalidScheme = errors.New("invalid URL. The url must begin with http or https")
	ErrNotJSON       = errors.New("invalid URL. The URL must end with .json and be in JSON format")
)

// Request is a validated invocation
type Request struct {
	URL     string
	SortKey catalog.SortKey
	Reverse bool
	Filter  string
}

// newRequest validates the raw command-line values
func newRequest(rawURL, sortName string, reverse bool, filter string) (Request, error) {
	if err := validateURL(rawURL); err != nil {
		return Request{}, err
	}

	key, err := catalog.ParseSortKey(sortName)
	if err != nil {
		return Request{}, fmt.Errorf("invalid --sort value: %w", err)
	}

	return Request{
		URL:     rawURL,
		SortKey: key,
		Reverse: reverse,
		Filter:  strings.TrimSpace(filter),
	}, nil
}

// validateURL accepts absolute http(s) URLs whose path names a .json file.
// Query strings and fragments are allowed after the path.
func validateURL(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return ErrInvalidScheme
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidScheme, rawURL)
	}

	if !strings.HasSuffix(strings.ToLower(u.Path), ".json") {
		return ErrNotJSON
	}

	return nil
}
