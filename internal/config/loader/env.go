package loader

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "KEYBIND_")
	mapping map[string]string // Env var -> config path
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "KEYBIND_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"KEYBIND_PLATFORM":    "platform",
		"KEYBIND_LOG_LEVEL":   "log.level",
		"KEYBIND_KEYBINDINGS": "keybindings.path",
		"KEYBIND_WATCH":       "keybindings.watch",
		"KEYBIND_DEBOUNCE":    "keybindings.debounce",
	}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	// First, load explicitly mapped variables
	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			setByPath(config, path, parseValue(val))
		}
	}

	// Then, scan for additional prefixed variables not in mapping
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}

		setByPath(config, l.envToPath(name), parseValue(value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts KEYBIND_KEYBINDINGS_WATCH_DELAY to keybindings.watchDelay.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(name, "_")

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part != "" {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	lower := strings.ToLower(s)
	if lower == "true" || lower == "yes" || lower == "on" {
		return true
	}
	if lower == "false" || lower == "no" || lower == "off" {
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only values containing a decimal point are floats.
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	if (strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{")) && gjson.Valid(s) {
		return gjson.Parse(s).Value()
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// Lookup reads a value from a nested configuration map by dot-separated
// path.
func Lookup(data map[string]any, path string) (any, bool) {
	var current any = data
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[part]; !ok {
			return nil, false
		}
	}
	return current, true
}
