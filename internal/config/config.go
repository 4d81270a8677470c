// Package config loads service settings from a YAML file, filling in
// defaults for anything omitted.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service settings.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr"`

	// MaxUploadMB caps the size of uploaded statements.
	MaxUploadMB int `yaml:"max_upload_mb"`

	// DefaultBank is used when a request names no bank; empty means
	// auto-detect from the statement text.
	DefaultBank string `yaml:"default_bank"`

	// LogLevel controls diagnostic verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ListenAddr:  ":8080",
		MaxUploadMB: 32,
		LogLevel:    "info",
	}
}

// Load reads a YAML config file. A missing path returns the defaults;
// loaded values override defaults field by field.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = Default().MaxUploadMB
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = Default().ListenAddr
	}
	return cfg, nil
}
