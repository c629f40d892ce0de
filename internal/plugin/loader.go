package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// entryPoints are tried in order inside a script directory.
var entryPoints = []string{"init.lua", "script.lua"}

// Loader discovers scripts in the filesystem.
type Loader struct {
	// Search paths (checked in order)
	paths []string
}

// Script describes a discovered script.
type Script struct {
	Name string
	// Path is the Lua file to run.
	Path string
	// Error is set when a script directory is unusable.
	Error error
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPaths sets the search paths.
func WithPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.paths = paths
	}
}

// NewLoader creates a new script loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{paths: DefaultPaths()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultPaths returns the default script search paths.
func DefaultPaths() []string {
	paths := make([]string, 0, 3)

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "numstep", "scripts"),
			filepath.Join(home, ".local", "share", "numstep", "scripts"),
		)
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".numstep", "scripts"))
	}
	return paths
}

// Paths returns the configured search paths.
func (l *Loader) Paths() []string {
	return l.paths
}

// AddPath adds a search path with the lowest priority.
func (l *Loader) AddPath(path string) {
	l.paths = append(l.paths, path)
}

// Discover lists every script in the search paths, sorted by name.
// Missing paths are skipped.
func (l *Loader) Discover() ([]Script, error) {
	found := make(map[string]Script)

	for _, base := range l.paths {
		entries, err := os.ReadDir(base)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", base, err)
		}

		for _, entry := range entries {
			var s Script
			switch {
			case entry.IsDir():
				s = inspectDir(entry.Name(), filepath.Join(base, entry.Name()))
			case filepath.Ext(entry.Name()) == ".lua":
				s = Script{
					Name: strings.TrimSuffix(entry.Name(), ".lua"),
					Path: filepath.Join(base, entry.Name()),
				}
			default:
				continue
			}
			if _, exists := found[s.Name]; !exists {
				found[s.Name] = s
			}
		}
	}

	scripts := make([]Script, 0, len(found))
	for _, s := range found {
		scripts = append(scripts, s)
	}
	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].Name < scripts[j].Name
	})
	return scripts, nil
}

// Find resolves name to a script. A name that is an existing file path is
// used as is; otherwise the search paths are checked in order.
func (l *Loader) Find(name string) (Script, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return Script{Name: strings.TrimSuffix(filepath.Base(name), ".lua"), Path: name}, nil
	}

	for _, base := range l.paths {
		dir := filepath.Join(base, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if s := inspectDir(name, dir); s.Error == nil {
				return s, nil
			}
		}

		file := filepath.Join(base, name+".lua")
		if _, err := os.Stat(file); err == nil {
			return Script{Name: name, Path: file}, nil
		}
	}

	return Script{}, fmt.Errorf("%w: %s", ErrScriptNotFound, name)
}

// inspectDir returns the script in a directory.
func inspectDir(name, dir string) Script {
	for _, entry := range entryPoints {
		path := filepath.Join(dir, entry)
		if _, err := os.Stat(path); err == nil {
			return Script{Name: name, Path: path}
		}
	}
	return Script{Name: name, Error: ErrNoEntryPoint}
}
