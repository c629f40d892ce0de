package lua

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// removedGlobals can load code from disk or strings and bypass require.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"module",
}

// builtinModules may be required by scripts.
var builtinModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// installSandbox strips unsafe globals, replaces require with a whitelist
// and routes print to out.
func installSandbox(L *lua.LState, out io.Writer) {
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	installSafeRequire(L)
	installPrint(L, out)
}

// installSafeRequire clears the package search paths and only lets
// built-in and preloaded ks modules through.
func installSafeRequire(L *lua.LState) {
	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}

	original := L.GetGlobal("require")

	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !builtinModules[name] && name != "ks" && !strings.HasPrefix(name, "ks.") {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(original)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}

// installPrint replaces print with one that writes to out.
func installPrint(L *lua.LState, out io.Writer) {
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, top)
		for i := 1; i <= top; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		fmt.Fprintln(out, strings.Join(parts, "\t"))
		return 0
	}))
}
