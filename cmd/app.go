package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/s0up4200/movies/catalog"
	"github.com/s0up4200/movies/config"
	"github.com/s0up4200/movies/filter"
	"github.com/s0up4200/movies/pager"
)

// Fetcher retrieves a raw catalog document
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// app runs the fetch, parse, filter, sort and render pipeline once
type app struct {
	fetcher Fetcher
	display config.DisplayConfig
	color   bool
	out     io.Writer
	in      io.Reader
	prompt  io.Writer
	errOut  io.Writer
	logger  zerolog.Logger
}

func (a *app) run(ctx context.Context, req Request) error {
	// Compile the filter before touching the network
	var f *filter.Filter
	if req.Filter != "" {
		var err error
		f, err = filter.Compile(req.Filter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	a.logger.Info().Str("url", req.URL).Msg("Fetching catalog")

	raw, err := a.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return err
	}

	movies, err := catalog.Parse(raw)
	if err != nil {
		var parseErr *catalog.ParseError
		if errors.As(err, &parseErr) {
			a.logger.Debug().Err(parseErr).Int("entry", parseErr.Index).Str("field", parseErr.Field).
				Msg("Catalog rejected")
		}
		return fmt.Errorf("unable to parse movie catalog: %w", catalog.ErrMalformedCatalog)
	}

	a.logger.Info().Int("movies", len(movies)).Msg("Parsed catalog")

	if f != nil {
		movies, err = f.Apply(movies)
		if err != nil {
			return err
		}
		a.logger.Info().Str("filter", f.String()).Int("movies", len(movies)).Msg("Applied filter")
	}

	if req.SortKey == catalog.SortNone && req.Reverse {
		a.logger.Debug().Msg("Reverse requested without a sort key, keeping source order")
	}
	movies = catalog.Sort(movies, req.SortKey, req.Reverse)

	if len(movies) == 0 {
		fmt.Fprintln(a.errOut, "No movies found.")
		return nil
	}

	opts := []pager.Option{
		pager.WithPageSize(a.display.PageSize),
		pager.WithFormatter(pager.NewFormatter(pager.FormatOptions{
			Color:    a.color,
			ShowTime: a.display.ShowTime,
		})),
		pager.WithLogger(a.logger),
	}
	if a.prompt != nil {
		opts = append(opts, pager.WithPrompt(a.prompt))
	}

	pager.New(a.out, a.in, opts...).Render(movies)
	return nil
}
