package config

import "time"

// Config represents the complete configuration of the rated command
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds Rated API connection details
type APIConfig struct {
	Key     string        `mapstructure:"key"`
	Network string        `mapstructure:"network"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OutputConfig controls how records are printed
type OutputConfig struct {
	Filters  map[string]string `mapstructure:"filters"`
	PageSize int               `mapstructure:"page_size"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
