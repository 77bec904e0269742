package pager

import (
	"io"

	"github.com/rs/zerolog"
)

// DefaultPageSize is the number of movies shown before waiting for input.
const DefaultPageSize = 5

// Option configures a Pager.
type Option func(*pagerOptions)

// pagerOptions holds configuration options for the Pager.
type pagerOptions struct {
	pageSize  int
	formatter *Formatter
	prompt    io.Writer
	logger    zerolog.Logger
}

// WithPageSize sets the number of movies per page. Values below one are ignored.
func WithPageSize(size int) Option {
	return func(o *pagerOptions) {
		if size > 0 {
			o.pageSize = size
		}
	}
}

// WithFormatter sets the formatter used for each movie.
func WithFormatter(formatter *Formatter) Option {
	return func(o *pagerOptions) {
		if formatter != nil {
			o.formatter = formatter
		}
	}
}

// WithPrompt writes a continuation hint to w before each wait.
func WithPrompt(w io.Writer) Option {
	return func(o *pagerOptions) {
		o.prompt = w
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *pagerOptions) {
		o.logger = logger
	}
}
