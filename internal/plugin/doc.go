// Package plugin locates the Lua scripts numstep runs.
//
// Scripts live in search paths, checked in order:
//
//	~/.config/numstep/scripts/
//	~/.local/share/numstep/scripts/
//	./.numstep/scripts/
//
// A script is either a single file (name.lua) or a directory whose entry
// point is init.lua or script.lua. The first path that provides a name
// wins. The runtime itself is in package lua and the ks API in package api.
package plugin
