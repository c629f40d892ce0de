package plugin

import "errors"

// Script lookup errors.
var (
	// ErrScriptNotFound is returned when a script cannot be located.
	ErrScriptNotFound = errors.New("script not found")

	// ErrNoEntryPoint is returned when a script directory has no entry point.
	ErrNoEntryPoint = errors.New("script has no entry point (init.lua or script.lua)")
)
