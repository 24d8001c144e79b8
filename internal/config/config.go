package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/keybind/internal/config/loader"
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/log"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "KEYBIND_"

// DefaultDebounce is the default delay between an override file change and
// the table rebuild it triggers.
const DefaultDebounce = 250 * time.Millisecond

// Config holds the resolved keybind settings.
type Config struct {
	// Platform is "auto", "linux", "windows" or "mac".
	Platform string

	// KeybindingsPath is the user override file.
	KeybindingsPath string

	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string

	// Watch enables live reload of the override file.
	Watch bool

	// Debounce delays reloads after a burst of file changes.
	Debounce time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Platform:        "auto",
		KeybindingsPath: filepath.Join(DefaultDir(), "keybindings.json"),
		LogLevel:        "info",
		Watch:           true,
		Debounce:        DefaultDebounce,
	}
}

// DefaultDir returns the user configuration directory for keybind.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "keybind")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "keybind")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}

// Load reads the config file at path, applies KEYBIND_ environment
// overrides on top and validates the result. A missing file is not an
// error; an empty path skips the file layer.
func Load(path string) (Config, error) {
	fileMap, err := loader.NewTOMLLoader(path).Load()
	if err != nil {
		return Config{}, err
	}
	envMap, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	cfg, err := FromMap(loader.DeepMerge(fileMap, envMap))
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	log.Debug("config loaded", "path", path, "platform", cfg.Platform,
		"keybindings", cfg.KeybindingsPath, "watch", cfg.Watch)
	return cfg, nil
}

// FromMap decodes a merged settings map over the defaults. Unknown keys
// are ignored.
func FromMap(m map[string]any) (Config, error) {
	cfg := Default()
	var errs []error

	if v, ok := loader.Lookup(m, "platform"); ok {
		s, err := asString("platform", v)
		errs = append(errs, err)
		cfg.Platform = s
	}
	if v, ok := loader.Lookup(m, "log.level"); ok {
		s, err := asString("log.level", v)
		errs = append(errs, err)
		cfg.LogLevel = s
	}
	if v, ok := loader.Lookup(m, "keybindings.path"); ok {
		s, err := asString("keybindings.path", v)
		errs = append(errs, err)
		cfg.KeybindingsPath = expandHome(s)
	}
	if v, ok := loader.Lookup(m, "keybindings.watch"); ok {
		b, isBool := v.(bool)
		if !isBool {
			errs = append(errs, &TypeError{Path: "keybindings.watch", Expected: "bool", Actual: typeName(v)})
		}
		cfg.Watch = b
	}
	if v, ok := loader.Lookup(m, "keybindings.debounce"); ok {
		d, err := asDuration("keybindings.debounce", v)
		errs = append(errs, err)
		cfg.Debounce = d
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting holds a usable value.
func (c Config) Validate() error {
	var errs []error
	if _, err := key.ParsePlatform(c.Platform); err != nil {
		errs = append(errs, &ValidationError{Path: "platform", Message: "unknown platform", Value: c.Platform})
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, &ValidationError{Path: "log.level", Message: "unknown log level", Value: c.LogLevel})
	}
	if c.Debounce < 0 {
		errs = append(errs, &ValidationError{Path: "keybindings.debounce", Message: "must not be negative", Value: c.Debounce})
	}
	return errors.Join(errs...)
}

// ResolvedPlatform returns the platform the settings select.
func (c Config) ResolvedPlatform() key.Platform {
	p, err := key.ParsePlatform(c.Platform)
	if err != nil {
		return key.CurrentPlatform()
	}
	return p
}

func asString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// asDuration accepts a duration string, a time.Duration or a whole number
// of milliseconds.
func asDuration(path string, v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case int64:
		return time.Duration(d) * time.Millisecond, nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, &ValidationError{Path: path, Message: "invalid duration", Value: d}
		}
		return parsed, nil
	default:
		return 0, &TypeError{Path: path, Expected: "duration", Actual: typeName(v)}
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	case time.Duration:
		return "duration"
	default:
		return fmt.Sprintf("%T", v)
	}
}
