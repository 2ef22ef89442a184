package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is read from the working directory when no path is given
const DefaultFile = "contrast.toml"

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds report and runtime settings.
// Precedence: defaults, then the TOML file, then environment, then flags.
type Config struct {
	Output      string `toml:"output"`
	ASCII       bool   `toml:"ascii"`
	Swatch      bool   `toml:"swatch"`
	MetricsFile string `toml:"metrics_file"`
	LogLevel    string `toml:"log_level"`

	// Source is the config file actually read, empty if none
	Source string `toml:"-"`
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Output:   OutputText,
		Swatch:   true,
		LogLevel: "info",
	}
}

// Load builds the configuration from path (or DefaultFile) and the environment.
// A missing DefaultFile is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err == nil {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("reading %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
		cfg.Source = path
	} else if explicit {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	applyEnv(cfg)
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		errs = append(errs, fmt.Sprintf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel))
	}

	if c.MetricsFile != "" && strings.HasSuffix(c.MetricsFile, string(os.PathSeparator)) {
		errs = append(errs, fmt.Sprintf("metrics_file must be a file path, got directory %q", c.MetricsFile))
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}
