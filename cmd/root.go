package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/movies/config"
	"github.com/s0up4200/movies/fetch"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	// Command flags
	sortKey    string
	reverse    bool
	filterExpr string
	preset     string
	pageSize   int
	noColor    bool
	showTime   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "movies <url>",
	Short: "Browse a JSON movie catalog page by page",
	Long: `movies downloads a JSON catalog of movies, optionally filters and sorts it,
and prints it five movies at a time, waiting for Enter between pages.

The URL must use http or https and point at a .json document.`,
	Example: `  movies https://example.com/movies.json
  movies https://example.com/movies.json --sort year --reverse
  movies https://example.com/movies.json --filter 'minutes < 100'`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: initializeApp,
	RunE:              runRoot,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version reported by --version
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.Flags().StringVarP(&sortKey, "sort", "s", "", "sort by field: title, year, runtime or date")
	rootCmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "reverse the sort order")
	rootCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'year >= 2000'")
	rootCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	rootCmd.Flags().IntVar(&pageSize, "page-size", 0, "movies per page (default from config, 5)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	rootCmd.Flags().BoolVar(&showTime, "show-time", false, "include the local upload time")

	rootCmd.MarkFlagsMutuallyExclusive("filter", "preset")
}

// initializeApp loads the configuration and applies flag overrides
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	flags := cmd.Flags()
	if flags.Changed("sort") {
		cfg.Sort.Key = sortKey
	}
	if flags.Changed("reverse") {
		cfg.Sort.Reverse = reverse
	}
	if flags.Changed("page-size") {
		if pageSize < 1 {
			return fmt.Errorf("--page-size must be at least 1")
		}
		cfg.Display.PageSize = pageSize
	}
	if flags.Changed("no-color") && noColor {
		cfg.Display.Color = config.ColorNever
	}
	if flags.Changed("show-time") {
		cfg.Display.ShowTime = showTime
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	expr, err := filterExpression()
	if err != nil {
		return err
	}

	req, err := newRequest(args[0], cfg.Sort.Key, cfg.Sort.Reverse, expr)
	if err != nil {
		return err
	}

	a := &app{
		fetcher: fetch.NewClient(logger,
			fetch.WithTimeout(cfg.Fetch.Timeout),
			fetch.WithMaxRetries(cfg.Fetch.Retries),
			fetch.WithRetryDelay(cfg.Fetch.RetryDelay),
			fetch.WithUserAgent(cfg.Fetch.UserAgent),
		),
		display: cfg.Display,
		color:   colorEnabled(cfg.Display.Color, os.Stdout),
		out:     os.Stdout,
		in:      os.Stdin,
		errOut:  os.Stderr,
		logger:  logger,
	}
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		a.prompt = os.Stderr
	}

	return a.run(cmd.Context(), req)
}

// filterExpression determines the filter expression to use
func filterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		return cfg.Preset(preset)
	}

	return cfg.Filter.Default, nil
}

// colorEnabled resolves a display.color mode for the given output
func colorEnabled(mode string, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
