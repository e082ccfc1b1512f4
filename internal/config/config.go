// Package config provides configuration management for the catalog cleaner.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"catalogclean/internal/normalizer"
)

// Configuration validation errors.
var (
	ErrMissingInputPath        = errors.New("input.path is required")
	ErrMissingOutputPath       = errors.New("output.path is required")
	ErrSameInputOutput         = errors.New("output.path must differ from input.path")
	ErrInvalidMinutesPerSeason = errors.New("cleaning.minutes_per_season must be at least 1")
	ErrEmptyFillValue          = errors.New("cleaning fill values must not be empty")
	ErrInvalidLogLevel         = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat        = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete cleaner configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Cleaning CleaningConfig `yaml:"cleaning"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputConfig points at the raw catalog file.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig defines where cleaned data and the summary report go.
type OutputConfig struct {
	Path       string `yaml:"path"`
	ReportPath string `yaml:"report_path"`
}

// CleaningConfig holds the fill values and duration heuristic.
type CleaningConfig struct {
	MinutesPerSeason int    `yaml:"minutes_per_season"`
	UnknownCountry   string `yaml:"unknown_country"`
	UnratedRating    string `yaml:"unrated_rating"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given. Paths
// are left empty and must come from a file or flags.
func DefaultConfig() *Config {
	opts := normalizer.DefaultOptions()

	return &Config{
		Cleaning: CleaningConfig{
			MinutesPerSeason: opts.MinutesPerSeason,
			UnknownCountry:   opts.UnknownCountry,
			UnratedRating:    opts.UnratedRating,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of DefaultConfig.
// It does not validate, so flags can still fill in paths.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return ErrMissingInputPath
	}

	if strings.TrimSpace(c.Output.Path) == "" {
		return ErrMissingOutputPath
	}

	if c.Input.Path == c.Output.Path {
		return ErrSameInputOutput
	}

	if c.Cleaning.MinutesPerSeason < 1 {
		return ErrInvalidMinutesPerSeason
	}

	if c.Cleaning.UnknownCountry == "" {
		return fmt.Errorf("%w: unknown_country", ErrEmptyFillValue)
	}

	if c.Cleaning.UnratedRating == "" {
		return fmt.Errorf("%w: unrated_rating", ErrEmptyFillValue)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// NormalizerOptions converts the cleaning section into normalizer options.
func (c *Config) NormalizerOptions() normalizer.Options {
	return normalizer.Options{
		MinutesPerSeason: c.Cleaning.MinutesPerSeason,
		UnknownCountry:   c.Cleaning.UnknownCountry,
		UnratedRating:    c.Cleaning.UnratedRating,
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, MinutesPerSeason: %d}",
		c.Input.Path,
		c.Output.Path,
		c.Cleaning.MinutesPerSeason,
	)
}
