// Package config loads the process's listen address and log level from the
// environment, grounded on dgallion1-simpleBudget's
// internal/config/config.go default-then-env-override pattern.
package config

import "os"

// Config holds the process's runtime configuration.
type Config struct {
	Addr     string
	LogLevel string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:     ":8080",
		LogLevel: "info",
	}
}

// Load returns configuration overridden by environment variables.
func Load() *Config {
	cfg := DefaultConfig()

	if addr := os.Getenv("SCENARIO_ENGINE_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if level := os.Getenv("SCENARIO_ENGINE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg
}
