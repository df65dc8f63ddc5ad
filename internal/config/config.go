package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the review options recognized by the scanners and the
// traversal layer. Unknown keys in a config file are ignored.
type Config struct {
	MaxLineLength int `yaml:"max_line_length"`

	// MaxFunctionLength and MaxComplexity are reserved for future checks.
	// They are accepted in config files but no current scanner enforces them.
	MaxFunctionLength int `yaml:"max_function_length"`
	MaxComplexity     int `yaml:"max_complexity"`

	CheckSecurity    bool `yaml:"check_security"`
	CheckPerformance bool `yaml:"check_performance"`
	CheckQuality     bool `yaml:"check_quality"`

	// ExcludePatterns are filename/directory suffixes skipped during
	// traversal. Best-practices checks are never gated and have no flag.
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// SeverityLevels is the canonical severity display order.
	SeverityLevels []string `yaml:"severity_levels"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		MaxLineLength:     100,
		MaxFunctionLength: 50,
		MaxComplexity:     10,
		CheckSecurity:     true,
		CheckPerformance:  true,
		CheckQuality:      true,
		ExcludePatterns:   []string{"*.pyc", "__pycache__", ".git", "venv", "node_modules"},
		SeverityLevels:    []string{"critical", "high", "medium", "low", "info"},
	}
}

// Load builds the effective config: defaults overlaid with the file at path.
// An empty path returns the defaults. A missing or malformed file is a
// startup failure and must be surfaced before any scanning begins.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	// Unmarshaling into the pre-filled struct keeps every default the file
	// does not mention, including booleans explicitly set to false.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}
