package loader

import (
	"testing"
	"time"
)

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("NUMSTEP_LOG_LEVEL", "debug")
	t.Setenv("NUMSTEP_SEPARATOR", ",")
	t.Setenv("NUMSTEP_STEP", "1")

	config, err := NewEnvLoader("NUMSTEP_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := Lookup(config, "logging.level"); !ok || val != "debug" {
		t.Errorf("logging.level = %v, want 'debug'", val)
	}
	if val, ok := Lookup(config, "increment.separator"); !ok || val != "," {
		t.Errorf("increment.separator = %v, want ','", val)
	}
	if val, ok := Lookup(config, "increment.step"); !ok || val != int64(1) {
		t.Errorf("increment.step = %v (%T), want 1", val, val)
	}
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	t.Setenv("NUMSTEP_PLUGIN_TIMEOUT", "2s")

	config, err := NewEnvLoader("NUMSTEP_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := Lookup(config, "plugin.timeout"); !ok || val != 2*time.Second {
		t.Errorf("plugin.timeout = %v (%T), want 2s", val, val)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader("NUMSTEP_")

	tests := []struct {
		env  string
		want string
	}{
		{"NUMSTEP_PLUGIN_TIMEOUT", "plugin.timeout"},
		{"NUMSTEP_INCREMENT_MAX_WIDTH", "increment.maxWidth"},
		{"NUMSTEP_DEBUG", "debug"},
	}

	for _, tt := range tests {
		if got := loader.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	t.Setenv("NS_COUNT", "3")

	loader := NewEnvLoaderWithMapping("NS_", nil)
	loader.AddMapping("NS_COUNT", "increment.step")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, _ := Lookup(config, "increment.step"); val != int64(3) {
		t.Errorf("increment.step = %v, want 3", val)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"OFF", false},
		{"1", int64(1)},
		{"-4", int64(-4)},
		{"1.5", 1.5},
		{"300ms", 300 * time.Millisecond},
		{",", ","},
		{".", "."},
	}

	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
