package api

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/numstep/internal/config"
	"github.com/dshills/numstep/internal/increment"
	"github.com/dshills/numstep/internal/logging"
)

// NumModule implements the ks.num API module.
type NumModule struct {
	opts   increment.BatchOptions
	step   int64
	logger *logging.Logger
}

// NewNumModule creates a num module using the increment settings of cfg.
// A nil logger discards output.
func NewNumModule(cfg config.IncrementConfig, logger *logging.Logger) *NumModule {
	if logger == nil {
		logger = logging.Nop()
	}
	return &NumModule{
		opts:   cfg.BatchOptions(),
		step:   cfg.Step,
		logger: logger.WithComponent("ks.num"),
	}
}

// Name returns the module name.
func (m *NumModule) Name() string {
	return "num"
}

// Register registers the module into the Lua state.
func (m *NumModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "increment", L.NewFunction(m.increment))
	L.SetField(mod, "decrement", L.NewFunction(m.decrement))
	L.SetField(mod, "parse", L.NewFunction(m.parse))
	L.SetField(mod, "at", L.NewFunction(m.at))
	L.SetField(mod, "step_all", L.NewFunction(m.stepAll))

	L.SetGlobal("_ks_num", mod)
	return nil
}

// increment(text, amount?) -> string|nil
func (m *NumModule) increment(L *lua.LState) int {
	text := L.CheckString(1)
	amount := L.OptInt64(2, m.step)
	return m.pushStep(L, text, amount)
}

// decrement(text, amount?) -> string|nil
func (m *NumModule) decrement(L *lua.LState) int {
	text := L.CheckString(1)
	amount := L.OptInt64(2, m.step)
	return m.pushStep(L, text, increment.Negate(amount))
}

func (m *NumModule) pushStep(L *lua.LState, text string, amount int64) int {
	out, err := increment.Step(text, amount, m.opts.Options)
	if err != nil {
		m.logger.Debug("rejected %q: %v", text, err)
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(out))
	return 1
}

// parse(text) -> {base, prefix, digits, value, separators} | nil, err
func (m *NumModule) parse(L *lua.LState) int {
	text := L.CheckString(1)

	n, err := increment.Parse(text, m.opts.Options)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	seps := L.NewTable()
	for i, off := range n.Separators {
		seps.RawSetInt(i+1, lua.LNumber(off))
	}

	tbl := L.NewTable()
	L.SetField(tbl, "base", lua.LNumber(n.Base))
	L.SetField(tbl, "prefix", lua.LString(n.Prefix))
	L.SetField(tbl, "digits", lua.LString(n.Digits))
	// Values may exceed what a Lua number holds exactly.
	L.SetField(tbl, "value", lua.LString(n.Value().String()))
	L.SetField(tbl, "signed", lua.LBool(n.Base.Signed()))
	L.SetField(tbl, "separators", seps)
	L.Push(tbl)
	return 1
}

// at(line, col, amount?) -> new_line, start, stop | nil
//
// col is a 1-based byte column. start and stop are the 1-based inclusive
// bounds of the replacement within new_line.
func (m *NumModule) at(L *lua.LState) int {
	line := L.CheckString(1)
	col := L.CheckInt(2)
	amount := L.OptInt64(3, m.step)

	if col < 1 {
		L.ArgError(2, "column must be >= 1")
		return 0
	}

	edit, ok := increment.IncrementAt(line, col-1, amount, m.opts.Options)
	if !ok {
		m.logger.Debug("no literal at column %d", col)
		L.Push(lua.LNil)
		return 1
	}

	L.Push(lua.LString(edit.Apply(line)))
	L.Push(lua.LNumber(edit.Span.Start + 1))
	L.Push(lua.LNumber(edit.Span.Start + len(edit.Text)))
	return 3
}

// step_all({texts}, amount?) -> {results}
//
// Rejected entries are false in the result table.
func (m *NumModule) stepAll(L *lua.LState) int {
	texts := L.CheckTable(1)
	amount := L.OptInt64(2, m.step)

	n := texts.Len()
	reqs := make([]increment.Request, n)
	for i := 1; i <= n; i++ {
		s, ok := texts.RawGetInt(i).(lua.LString)
		if !ok {
			L.ArgError(1, "expected a list of strings")
			return 0
		}
		reqs[i-1] = increment.Request{Text: string(s), Amount: amount}
	}

	ctx := L.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := increment.StepAll(ctx, reqs, m.opts)
	if err != nil {
		L.RaiseError("step_all: %v", err)
		return 0
	}

	out := L.CreateTable(n, 0)
	for i, res := range results {
		if res.Changed() {
			out.RawSetInt(i+1, lua.LString(res.Text))
		} else {
			out.RawSetInt(i+1, lua.LFalse)
		}
	}
	L.Push(out)
	return 1
}
