package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/movies/catalog"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"https catalog", "https://example.com/movies.json", nil},
		{"http catalog", "http://localhost:8080/data/movies.json", nil},
		{"Upper case extension", "https://example.com/MOVIES.JSON", nil},
		{"Query string", "https://example.com/movies.json?token=abc", nil},
		{"No scheme", "example.com/movies.json", ErrInvalidScheme},
		{"FTP scheme", "ftp://example.com/movies.json", ErrInvalidScheme},
		{"Missing host", "https:///movies.json", ErrInvalidScheme},
		{"Not JSON", "https://example.com/movies.xml", ErrNotJSON},
		{"No path", "https://example.com", ErrNotJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewRequest(t *testing.T) {
	req, err := newRequest("https://example.com/movies.json", "Year", true, "  year > 2000 ")
	require.NoError(t, err)
	assert.Equal(t, Request{
		URL:     "https://example.com/movies.json",
		SortKey: catalog.SortYear,
		Reverse: true,
		Filter:  "year > 2000",
	}, req)

	req, err = newRequest("https://example.com/movies.json", "", true, "")
	require.NoError(t, err)
	assert.Equal(t, catalog.SortNone, req.SortKey)

	_, err = newRequest("https://example.com/movies.json", "rating", false, "")
	assert.ErrorIs(t, err, catalog.ErrUnknownSortKey)

	_, err = newRequest("movies.json", "title", false, "")
	assert.ErrorIs(t, err, ErrInvalidScheme)
}
