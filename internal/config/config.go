// Package config provides layered settings for numstep.
//
// Settings are resolved from, lowest priority first: built-in defaults, an
// optional TOML or YAML file, and NUMSTEP_* environment variables. Command
// line flags are applied on top by the caller.
package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/numstep/internal/config/loader"
	"github.com/dshills/numstep/internal/increment"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "NUMSTEP_"

// Default values.
const (
	DefaultStep          = 1
	DefaultLogLevel      = "info"
	DefaultPluginTimeout = 5 * time.Second
)

// Config is the resolved numstep configuration.
type Config struct {
	Increment IncrementConfig
	Logging   LoggingConfig
	Plugin    PluginConfig
}

// IncrementConfig holds the [increment] section.
type IncrementConfig struct {
	// Separator is the digit grouping rune.
	Separator rune
	// Step is the amount used when a command is given none.
	Step int64
	// Workers bounds batch concurrency.
	Workers int
}

// LoggingConfig holds the [logging] section.
type LoggingConfig struct {
	Level string
}

// PluginConfig holds the [plugin] section.
type PluginConfig struct {
	// Timeout bounds a single Lua script run.
	Timeout time.Duration
	// Paths are extra script search paths, checked before the defaults.
	Paths []string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Increment: IncrementConfig{
			Separator: increment.DefaultSeparator,
			Step:      DefaultStep,
			Workers:   increment.DefaultWorkers,
		},
		Logging: LoggingConfig{Level: DefaultLogLevel},
		Plugin:  PluginConfig{Timeout: DefaultPluginTimeout},
	}
}

// Options returns the recognition options for the increment package.
func (c IncrementConfig) Options() increment.Options {
	return increment.Options{Separator: c.Separator}
}

// BatchOptions returns the options for increment.StepAll.
func (c IncrementConfig) BatchOptions() increment.BatchOptions {
	return increment.BatchOptions{Options: c.Options(), Workers: c.Workers}
}

// Load resolves the configuration from path (which may be empty) and the
// environment. A path that does not exist is not an error.
func Load(path string) (*Config, error) {
	return LoadFS(loader.DefaultFS(), path)
}

// LoadFS is Load with an explicit file system.
func LoadFS(fsys loader.FileSystem, path string) (*Config, error) {
	var data map[string]any

	if path != "" {
		fl, err := fileLoader(fsys, path)
		if err != nil {
			return nil, err
		}
		fileData, err := fl.Load()
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		data = loader.DeepMerge(data, fileData)
	}

	envData, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	data = loader.DeepMerge(data, envData)

	return FromMap(data)
}

// fileLoader picks a loader by file extension.
func fileLoader(fsys loader.FileSystem, path string) (loader.FileLoader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return loader.NewTOMLLoaderWithFS(fsys, path), nil
	case ".yaml", ".yml":
		return loader.NewYAMLLoaderWithFS(fsys, path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// FromMap builds a Config from a settings map laid over the defaults.
func FromMap(data map[string]any) (*Config, error) {
	cfg := Default()

	if v, ok := loader.Lookup(data, "increment.separator"); ok {
		s, ok := v.(string)
		if !ok {
			return nil, invalid("increment.separator", v)
		}
		r, err := ParseSeparator(s)
		if err != nil {
			return nil, err
		}
		cfg.Increment.Separator = r
	}
	if v, ok := loader.Lookup(data, "increment.step"); ok {
		n, ok := toInt64(v)
		if !ok {
			return nil, invalid("increment.step", v)
		}
		cfg.Increment.Step = n
	}
	if v, ok := loader.Lookup(data, "increment.workers"); ok {
		n, ok := toInt64(v)
		if !ok {
			return nil, invalid("increment.workers", v)
		}
		cfg.Increment.Workers = int(n)
	}
	if v, ok := loader.Lookup(data, "logging.level"); ok {
		s, ok := v.(string)
		if !ok {
			return nil, invalid("logging.level", v)
		}
		cfg.Logging.Level = strings.ToLower(s)
	}
	if v, ok := loader.Lookup(data, "plugin.timeout"); ok {
		d, ok := toDuration(v)
		if !ok {
			return nil, invalid("plugin.timeout", v)
		}
		cfg.Plugin.Timeout = d
	}
	if v, ok := loader.Lookup(data, "plugin.paths"); ok {
		paths, ok := toPaths(v)
		if !ok {
			return nil, invalid("plugin.paths", v)
		}
		cfg.Plugin.Paths = paths
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := validSeparator(c.Increment.Separator); err != nil {
		return err
	}
	if c.Increment.Workers < 1 {
		return invalid("increment.workers", c.Increment.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level", c.Logging.Level)
	}
	if c.Plugin.Timeout <= 0 {
		return invalid("plugin.timeout", c.Plugin.Timeout)
	}
	return nil
}

// ParseSeparator parses a one-rune separator setting.
func ParseSeparator(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, invalid("increment.separator", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if err := validSeparator(r); err != nil {
		return 0, err
	}
	return r, nil
}

// validSeparator rejects runes that can be part of a literal itself.
// The quote is allowed, but it makes the sized 'h, 'd and 'b forms
// unrecognizable.
func validSeparator(r rune) error {
	switch {
	case r == utf8.RuneError, r == '-', r == '+':
		return invalid("increment.separator", string(r))
	case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
		return invalid("increment.separator", string(r))
	case unicode.IsSpace(r), unicode.IsControl(r):
		return invalid("increment.separator", strconv.QuoteRune(r))
	}
	return nil
}

func invalid(path string, value any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidSetting, path, value)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

// toPaths accepts a list of strings or an OS path list ("a:b").
func toPaths(v any) ([]string, bool) {
	switch p := v.(type) {
	case string:
		return filepath.SplitList(p), true
	case []string:
		return p, true
	case []any:
		paths := make([]string, 0, len(p))
		for _, item := range p {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			paths = append(paths, s)
		}
		return paths, true
	}
	return nil, false
}

func toDuration(v any) (time.Duration, bool) {
	switch d := v.(type) {
	case time.Duration:
		return d, true
	case string:
		parsed, err := time.ParseDuration(d)
		return parsed, err == nil
	}
	return 0, false
}
