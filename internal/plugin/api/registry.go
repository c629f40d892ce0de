package api

import (
	"fmt"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Version is the ks API version reported to scripts.
const Version = "1.0.0"

// Module represents a Lua API module.
type Module interface {
	// Name returns the module name (e.g., "num").
	Name() string

	// Register registers the module functions into the Lua state.
	// The module should register itself under the _ks_<name> global.
	Register(L *lua.LState) error
}

// Registry manages API modules and their registration.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates a new API registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds a module to the registry.
func (r *Registry) Register(mod Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[mod.Name()]; exists {
		return fmt.Errorf("module %q already registered", mod.Name())
	}

	r.modules[mod.Name()] = mod
	return nil
}

// Get returns a module by name.
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mod, ok := r.modules[name]
	return mod, ok
}

// List returns all registered module names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InjectAll registers every module into the Lua state and installs the ks
// module loader.
func (r *Registry) InjectAll(L *lua.LState) error {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range names {
		if err := r.modules[name].Register(L); err != nil {
			return fmt.Errorf("failed to register module %q: %w", name, err)
		}
	}

	if err := installKSLoader(L, names); err != nil {
		return fmt.Errorf("failed to install ks loader: %w", err)
	}
	return nil
}

// installKSLoader installs the ks module that aggregates the named modules.
// Scripts use: local ks = require("ks")
func installKSLoader(L *lua.LState, names []string) error {
	ksModule := L.NewTable()

	for _, name := range names {
		globalName := "_ks_" + name
		val := L.GetGlobal(globalName)
		if val == lua.LNil {
			return fmt.Errorf("module %q did not set %s", name, globalName)
		}
		L.SetField(ksModule, name, val)
		L.SetGlobal(globalName, lua.LNil)
	}

	L.SetField(ksModule, "version", lua.LString(Version))
	L.SetField(ksModule, "api_version", lua.LNumber(1))

	L.PreloadModule("ks", func(L *lua.LState) int {
		L.Push(ksModule)
		return 1
	})
	return nil
}

// DefaultRegistry creates a registry with the standard modules registered.
func DefaultRegistry(num *NumModule) (*Registry, error) {
	r := NewRegistry()

	for _, mod := range []Module{num} {
		if err := r.Register(mod); err != nil {
			return nil, fmt.Errorf("failed to register module %q: %w", mod.Name(), err)
		}
	}
	return r, nil
}
