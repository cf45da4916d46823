// Package config loads the read-only YAML settings of the taskbar clock.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the effective settings.
type Config struct {
	Width       int32  `yaml:"width"`
	Height      int32  `yaml:"height"`
	SkipPrimary bool   `yaml:"skip_primary"`
	TimeFormat  string `yaml:"time_format"`
	DateFormat  string `yaml:"date_format"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Width:      80,
		Height:     40,
		TimeFormat: "15:04",
		DateFormat: "02.01.2006",
		LogLevel:   "info",
	}
}

// ValidationError reports an invalid setting.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return &ValidationError{Path: "width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Height <= 0 {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be > 0")}
	}
	if c.TimeFormat == "" && c.DateFormat == "" {
		return &ValidationError{Path: "time_format", Err: fmt.Errorf("time_format and date_format must not both be empty")}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	return nil
}

// ParseLevel maps a log_level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level must be one of: debug, info, warning, error")
}

// DefaultConfigPath returns %APPDATA%\taskbarclock\config.yaml (or the
// platform equivalent).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "taskbarclock", "config.yaml"), nil
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path on top of the defaults. A missing file yields the
// defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
