package plugin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if len(loader.Paths()) == 0 {
		t.Error("NewLoader() should have default paths")
	}
}

func TestLoaderPaths(t *testing.T) {
	loader := NewLoader(WithPaths("/initial"))
	loader.AddPath("/added")

	if diff := cmp.Diff([]string{"/initial", "/added"}, loader.Paths()); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderDiscover(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeFile(t, filepath.Join(first, "bump.lua"), "-- bump")
	writeFile(t, filepath.Join(first, "hexify", "init.lua"), "-- hexify")
	writeFile(t, filepath.Join(first, "broken", "README"), "no entry")
	writeFile(t, filepath.Join(first, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(second, "bump.lua"), "-- shadowed")
	writeFile(t, filepath.Join(second, "renumber", "script.lua"), "-- renumber")

	loader := NewLoader(WithPaths(first, filepath.Join(first, "missing"), second))
	scripts, err := loader.Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []Script{
		{Name: "broken", Error: ErrNoEntryPoint},
		{Name: "bump", Path: filepath.Join(first, "bump.lua")},
		{Name: "hexify", Path: filepath.Join(first, "hexify", "init.lua")},
		{Name: "renumber", Path: filepath.Join(second, "renumber", "script.lua")},
	}
	opt := cmp.Comparer(func(a, b error) bool { return errors.Is(a, b) || errors.Is(b, a) })
	if diff := cmp.Diff(want, scripts, opt); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderFind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bump.lua"), "-- bump")
	writeFile(t, filepath.Join(dir, "hexify", "init.lua"), "-- hexify")
	direct := filepath.Join(t.TempDir(), "direct.lua")
	writeFile(t, direct, "-- direct")

	loader := NewLoader(WithPaths(dir))

	tests := []struct {
		name string
		want string
	}{
		{"bump", filepath.Join(dir, "bump.lua")},
		{"hexify", filepath.Join(dir, "hexify", "init.lua")},
		{direct, direct},
	}
	for _, tt := range tests {
		got, err := loader.Find(tt.name)
		if err != nil {
			t.Errorf("Find(%q) error = %v", tt.name, err)
			continue
		}
		if got.Path != tt.want {
			t.Errorf("Find(%q).Path = %q, want %q", tt.name, got.Path, tt.want)
		}
	}

	if _, err := loader.Find("missing"); !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("Find(missing) error = %v, want ErrScriptNotFound", err)
	}
}
