package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by applyEnv
const (
	EnvOutput      = "CONTRAST_OUTPUT"
	EnvASCII       = "CONTRAST_ASCII"
	EnvSwatch      = "CONTRAST_SWATCH"
	EnvMetricsFile = "CONTRAST_METRICS_FILE"
	EnvLogLevel    = "LOG_LEVEL"
)

// applyEnv overrides cfg with any environment variables that are set
func applyEnv(cfg *Config) {
	cfg.Output = getEnvOrDefault(EnvOutput, cfg.Output)
	cfg.ASCII = parseBoolOrDefault(os.Getenv(EnvASCII), cfg.ASCII)
	cfg.Swatch = parseBoolOrDefault(os.Getenv(EnvSwatch), cfg.Swatch)
	cfg.MetricsFile = getEnvOrDefault(EnvMetricsFile, cfg.MetricsFile)
	cfg.LogLevel = getEnvOrDefault(EnvLogLevel, cfg.LogLevel)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseBoolOrDefault parses "1", "true", "yes" style values, returning default otherwise
func parseBoolOrDefault(s string, defaultValue bool) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return defaultValue
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return defaultValue
}
