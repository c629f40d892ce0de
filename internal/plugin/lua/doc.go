// Package lua provides the sandboxed Lua runtime numstep scripts run in.
//
// The State type wraps gopher-lua with a restricted standard library
// (base, package, table, string, math), a whitelist-based require and a
// per-run execution timeout:
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(2 * time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	if err := state.DoString(`print(require("ks").num.increment("0x0f", 1))`); err != nil {
//	    return err
//	}
//
// API modules are installed by package api; require("ks") only resolves
// after api.Registry.InjectAll has run against the state.
package lua
