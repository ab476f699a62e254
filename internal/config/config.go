// Package config loads the optional TOML file that seeds CLI defaults.
// Command-line flags always win over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/classics/fibonacci"
	"github.com/katalvlaran/classics/permutation"
	"github.com/katalvlaran/classics/sorting"
)

// ErrInvalidConfig is returned by Load and Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config mirrors the TOML layout:
//
//	[log]
//	level = "info"
//
//	[permute]
//	strategy = "narayana"
//	output = ""
//
//	[fibonacci]
//	method = "iterative"
//
//	[sort]
//	method = "insertion"
type Config struct {
	Log       LogConfig       `toml:"log"`
	Permute   PermuteConfig   `toml:"permute"`
	Fibonacci FibonacciConfig `toml:"fibonacci"`
	Sort      SortConfig      `toml:"sort"`
}

// LogConfig selects the minimum log level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// PermuteConfig holds defaults for the permute command.
// An empty Output measures enumeration cost without writing anything.
type PermuteConfig struct {
	Strategy string `toml:"strategy"`
	Output   string `toml:"output"`
}

type FibonacciConfig struct {
	Method string `toml:"method"`
}

type SortConfig struct {
	Method string `toml:"method"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:       LogConfig{Level: "info"},
		Permute:   PermuteConfig{Strategy: permutation.Narayana},
		Fibonacci: FibonacciConfig{Method: fibonacci.MethodIterative},
		Sort:      SortConfig{Method: sorting.MethodInsertion},
	}
}

// Load reads path over Default() and validates the result.
// An empty path returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks every name against the corresponding registry.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if _, err := permutation.Lookup(c.Permute.Strategy); err != nil {
		return fmt.Errorf("%w: permute.strategy: %w", ErrInvalidConfig, err)
	}
	if _, err := fibonacci.ByName(c.Fibonacci.Method); err != nil {
		return fmt.Errorf("%w: fibonacci.method: %w", ErrInvalidConfig, err)
	}
	if _, err := sorting.ByName[int](c.Sort.Method); err != nil {
		return fmt.Errorf("%w: sort.method: %w", ErrInvalidConfig, err)
	}
	return nil
}
