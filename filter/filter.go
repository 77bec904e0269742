// Package filter selects movies from a catalog with expr-lang expressions such
// as `year >= 2000 && minutes < 120` or `contains(title, "moon")`.
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/movies/catalog"
)

// Filter is a compiled filter expression
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a boolean filter expression
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty filter expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(movieEnv(catalog.Movie{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// String returns the source expression
func (f *Filter) String() string {
	return f.expr
}

// Match evaluates the filter against a movie
func (f *Filter) Match(movie catalog.Movie) (bool, error) {
	result, err := expr.Run(f.program, movieEnv(movie))
	if err != nil {
		return false, &EvaluationError{Expression: f.expr, MovieTitle: movie.Title(), Err: err}
	}

	matched, _ := result.(bool)
	return matched, nil
}

// Apply returns the movies of c that match, in their original order
func (f *Filter) Apply(c catalog.Catalog) (catalog.Catalog, error) {
	matched := make(catalog.Catalog, 0, len(c))
	for _, movie := range c {
		ok, err := f.Match(movie)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, movie)
		}
	}
	return matched, nil
}
