// Package api implements the Lua modules exposed to numstep scripts.
//
// Modules register themselves under an internal _ks_<name> global; the
// Registry then gathers them into the table returned by require("ks"):
//
//	local ks = require("ks")
//	print(ks.num.increment("0x0f", 1))   --> 0x10
//	print(ks.num.decrement("1_000"))     --> 999
package api
