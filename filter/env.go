package filter

import (
	"strings"
	"time"

	"github.com/s0up4200/movies/catalog"
)

// helpers are the functions available to every expression
var helpers = map[string]any{
	// Date helpers
	"daysSince": func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	},
	"daysAgo": func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	},
	"yearsAgo": func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	},
	"now": time.Now,
	// String helpers
	"contains": func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	},
	"startsWith": func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	},
	"endsWith": func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	},
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}

// movieEnv exposes a movie's fields to an expression. Absent values read as
// their zero value and have a matching has* flag.
func movieEnv(movie catalog.Movie) map[string]any {
	env := make(map[string]any, len(helpers)+8)
	for name, fn := range helpers {
		env[name] = fn
	}

	year, hasYear := movie.Year().Get()
	uploadDate, hasUploadDate := movie.UploadDate().Get()
	uploadedAt, _ := movie.UploadTime()

	env["title"] = movie.Title()
	env["year"] = year
	env["hasYear"] = hasYear
	env["durationMs"] = movie.DurationMs()
	env["minutes"] = int(movie.DurationMs() / 1000 / 60)
	env["uploadDate"] = uploadDate
	env["hasUploadDate"] = hasUploadDate
	env["uploadedAt"] = uploadedAt

	return env
}
