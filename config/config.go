package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/movies/catalog"
)

// Load loads the configuration. An explicit configPath must exist; otherwise
// the standard locations are searched and a missing file leaves the defaults
// in place.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix("MOVIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".movies"))
		}

		// Check /etc
		v.AddConfigPath("/etc/movies/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Fetch defaults
	v.SetDefault("fetch.timeout", "30s")
	v.SetDefault("fetch.retries", 2)
	v.SetDefault("fetch.retry_delay", "500ms")
	v.SetDefault("fetch.user_agent", "movies")

	// Display defaults
	v.SetDefault("display.page_size", 5)
	v.SetDefault("display.color", ColorAuto)
	v.SetDefault("display.show_time", false)

	// Sort defaults
	v.SetDefault("sort.key", "")
	v.SetDefault("sort.reverse", false)

	// Filter defaults
	v.SetDefault("filter.default", "")

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}

	if cfg.Fetch.Retries < 0 {
		return fmt.Errorf("fetch.retries must not be negative")
	}

	if cfg.Display.PageSize < 1 {
		return fmt.Errorf("display.page_size must be at least 1")
	}

	validColors := map[string]bool{
		ColorAuto:   true,
		ColorAlways: true,
		ColorNever:  true,
	}
	if !validColors[cfg.Display.Color] {
		return fmt.Errorf("invalid display.color: %s (must be 'auto', 'always' or 'never')", cfg.Display.Color)
	}

	if _, err := catalog.ParseSortKey(cfg.Sort.Key); err != nil {
		return fmt.Errorf("invalid sort.key: %w", err)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// Preset returns the expression stored under name. Names are case-insensitive
// because viper lowercases map keys.
func (c *Config) Preset(name string) (string, error) {
	expr, ok := c.Filter.Presets[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("preset '%s' not found in config", name)
	}
	return expr, nil
}
