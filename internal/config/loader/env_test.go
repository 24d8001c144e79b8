package loader

import (
	"testing"
	"time"
)

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("KEYBIND_PLATFORM", "windows")
	t.Setenv("KEYBIND_LOG_LEVEL", "debug")
	t.Setenv("KEYBIND_WATCH", "yes")
	t.Setenv("KEYBIND_DEBOUNCE", "75ms")

	config, err := NewEnvLoader("KEYBIND_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := Lookup(config, "platform"); !ok || val != "windows" {
		t.Errorf("platform = %v, want windows", val)
	}
	if val, ok := Lookup(config, "log.level"); !ok || val != "debug" {
		t.Errorf("log.level = %v, want debug", val)
	}
	if val, ok := Lookup(config, "keybindings.watch"); !ok || val != true {
		t.Errorf("keybindings.watch = %v, want true", val)
	}
	if val, ok := Lookup(config, "keybindings.debounce"); !ok || val != 75*time.Millisecond {
		t.Errorf("keybindings.debounce = %v (%T), want 75ms", val, val)
	}
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	t.Setenv("KEYBIND_CUSTOM_SETTING", "value")

	config, err := NewEnvLoader("KEYBIND_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := Lookup(config, "custom.setting"); !ok || val != "value" {
		t.Errorf("custom.setting = %v, want value", val)
	}
}

func TestEnvLoader_CustomMapping(t *testing.T) {
	t.Setenv("MYAPP_KEYS", "/tmp/keys.json")

	l := NewEnvLoaderWithMapping("MYAPP_", nil)
	l.AddMapping("MYAPP_KEYS", "keybindings.path")

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, ok := Lookup(config, "keybindings.path"); !ok || val != "/tmp/keys.json" {
		t.Errorf("keybindings.path = %v, want /tmp/keys.json", val)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader("KEYBIND_")

	tests := []struct {
		env  string
		want string
	}{
		{"KEYBIND_PLATFORM", "platform"},
		{"KEYBIND_LOG_LEVEL", "log.level"},
		{"KEYBIND_KEYBINDINGS_WATCH_DELAY", "keybindings.watchDelay"},
	}

	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"", ""},
		{"true", true},
		{"Off", false},
		{"42", int64(42)},
		{"1.5", 1.5},
		{"250ms", 250 * time.Millisecond},
		{"linux", "linux"},
	}

	for _, tt := range tests {
		if got := parseValue(tt.input); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v", tt.input, got, got, tt.want)
		}
	}
}

func TestParseValueJSON(t *testing.T) {
	got, ok := parseValue(`["a","b"]`).([]any)
	if !ok || len(got) != 2 || got[0] != "a" {
		t.Errorf("parseValue(array) = %v", got)
	}

	if got := parseValue("[not json"); got != "[not json" {
		t.Errorf("parseValue(invalid) = %v, want raw string", got)
	}
}
