package pager

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/s0up4200/movies/catalog"
)

const promptText = "-- Press Enter for more --"

// Pager prints a catalog page by page, blocking on a line of input between
// pages.
type Pager struct {
	out       io.Writer
	in        *bufio.Reader
	pageSize  int
	formatter *Formatter
	prompt    io.Writer
	logger    zerolog.Logger
}

// New creates a pager writing to out and reading operator input from in
func New(out io.Writer, in io.Reader, opts ...Option) *Pager {
	options := pagerOptions{
		pageSize: DefaultPageSize,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.formatter == nil {
		options.formatter = NewFormatter(FormatOptions{})
	}

	return &Pager{
		out:       out,
		in:        bufio.NewReader(in),
		pageSize:  options.pageSize,
		formatter: options.formatter,
		prompt:    options.prompt,
		logger:    options.logger,
	}
}

// Pages splits c into consecutive pages of size movies; the last page may be
// shorter. An empty catalog has no pages.
func Pages(c catalog.Catalog, size int) []catalog.Catalog {
	if len(c) == 0 {
		return nil
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	chunks := lo.Chunk(c, size)
	pages := make([]catalog.Catalog, len(chunks))
	for i, chunk := range chunks {
		pages[i] = catalog.Catalog(chunk)
	}
	return pages
}

// Render prints every page of c. After each page except the last it waits for
// one line of input, whose content is ignored. It returns once the last page
// has been printed; an empty catalog prints nothing.
func (p *Pager) Render(c catalog.Catalog) {
	pages := Pages(c, p.pageSize)

	p.logger.Debug().
		Int("movies", len(c)).
		Int("pages", len(pages)).
		Int("page_size", p.pageSize).
		Msg("Rendering catalog")

	for i, page := range pages {
		p.renderPage(page)

		if i < len(pages)-1 {
			p.wait(i + 1)
		}
	}
}

// renderPage prints the movies of one page separated by blank lines
func (p *Pager) renderPage(page catalog.Catalog) {
	for i, movie := range page {
		fmt.Fprintln(p.out, p.formatter.Format(movie))
		if i < len(page)-1 {
			fmt.Fprintln(p.out)
		}
	}
}

// wait blocks until a line of input arrives. End of input counts as the
// operator continuing.
func (p *Pager) wait(page int) {
	if p.prompt != nil {
		fmt.Fprint(p.prompt, promptText)
	}

	_, err := p.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		p.logger.Debug().Int("page", page).Msg("Input closed, continuing")
	default:
		p.logger.Warn().Err(err).Int("page", page).Msg("Failed to read input, continuing")
	}
}
