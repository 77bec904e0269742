package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Display DisplayConfig `mapstructure:"display"`
	Sort    SortConfig    `mapstructure:"sort"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FetchConfig controls how the catalog is downloaded
type FetchConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	Retries    int           `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	UserAgent  string        `mapstructure:"user_agent"`
}

// DisplayConfig controls paging and colour
type DisplayConfig struct {
	PageSize int    `mapstructure:"page_size"`
	Color    string `mapstructure:"color"`
	ShowTime bool   `mapstructure:"show_time"`
}

// SortConfig holds the default ordering
type SortConfig struct {
	Key     string `mapstructure:"key"`
	Reverse bool   `mapstructure:"reverse"`
}

// FilterConfig contains the default filter and named presets
type FilterConfig struct {
	Default string            `mapstructure:"default"`
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// Colour modes for DisplayConfig.Color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
