package api

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/numstep/internal/config"
)

func setupNumTest(t *testing.T, cfg config.IncrementConfig) *lua.LState {
	t.Helper()

	mod := NewNumModule(cfg, nil)

	L := lua.NewState()
	t.Cleanup(func() { L.Close() })

	if err := mod.Register(L); err != nil {
		t.Fatalf("Register error = %v", err)
	}
	return L
}

func defaultIncrementConfig() config.IncrementConfig {
	return config.Default().Increment
}

func TestNumModuleName(t *testing.T) {
	mod := NewNumModule(defaultIncrementConfig(), nil)
	if mod.Name() != "num" {
		t.Errorf("Name() = %q, want %q", mod.Name(), "num")
	}
}

func TestNumIncrement(t *testing.T) {
	L := setupNumTest(t, defaultIncrementConfig())

	err := L.DoString(`
		hex = _ks_num.increment("0x0f", 1)
		dflt = _ks_num.increment("41")
		big = _ks_num.increment("999_999", 1)
		bad = _ks_num.increment("abc", 1)
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	tests := []struct {
		global string
		want   lua.LValue
	}{
		{"hex", lua.LString("0x10")},
		{"dflt", lua.LString("42")},
		{"big", lua.LString("1_000_000")},
		{"bad", lua.LNil},
	}
	for _, tt := range tests {
		if got := L.GetGlobal(tt.global); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.global, got, tt.want)
		}
	}
}

func TestNumDecrement(t *testing.T) {
	L := setupNumTest(t, defaultIncrementConfig())

	err := L.DoString(`
		a = _ks_num.decrement("1_000")
		b = _ks_num.decrement("0x00")
		c = _ks_num.decrement("5", 10)
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	want := map[string]string{"a": "999", "b": "0x00", "c": "-5"}
	for global, w := range want {
		if got := L.GetGlobal(global).String(); got != w {
			t.Errorf("%s = %q, want %q", global, got, w)
		}
	}
}

func TestNumConfiguredStepAndSeparator(t *testing.T) {
	cfg := defaultIncrementConfig()
	cfg.Step = 5
	cfg.Separator = ','
	L := setupNumTest(t, cfg)

	if err := L.DoString(`r = _ks_num.increment("9,999")`); err != nil {
		t.Fatalf("DoString error = %v", err)
	}
	if got := L.GetGlobal("r").String(); got != "10,004" {
		t.Errorf("r = %q, want '10,004'", got)
	}
}

func TestNumParse(t *testing.T) {
	L := setupNumTest(t, defaultIncrementConfig())

	err := L.DoString(`
		n = _ks_num.parse("0xFF_FF")
		base = n.base
		prefix = n.prefix
		digits = n.digits
		value = n.value
		signed = n.signed
		sep = n.separators[1]
		nsep = #n.separators

		bad, msg = _ks_num.parse("0x")
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	tests := []struct {
		global string
		want   lua.LValue
	}{
		{"base", lua.LNumber(16)},
		{"prefix", lua.LString("0x")},
		{"digits", lua.LString("FFFF")},
		{"value", lua.LString("65535")},
		{"signed", lua.LFalse},
		{"sep", lua.LNumber(2)},
		{"nsep", lua.LNumber(1)},
		{"bad", lua.LNil},
	}
	for _, tt := range tests {
		if got := L.GetGlobal(tt.global); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.global, got, tt.want)
		}
	}
	if msg, ok := L.GetGlobal("msg").(lua.LString); !ok || msg == "" {
		t.Errorf("msg = %v, want an error string", L.GetGlobal("msg"))
	}
}

func TestNumAt(t *testing.T) {
	L := setupNumTest(t, defaultIncrementConfig())

	err := L.DoString(`
		line1, s1, e1 = _ks_num.at("x = 41;", 5)
		line2, s2, e2 = _ks_num.at("value -1 here", 1, 2)
		none = _ks_num.at("no digits", 1)
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	tests := []struct {
		global string
		want   lua.LValue
	}{
		{"line1", lua.LString("x = 42;")},
		{"s1", lua.LNumber(5)},
		{"e1", lua.LNumber(6)},
		{"line2", lua.LString("value 1 here")},
		{"s2", lua.LNumber(7)},
		{"e2", lua.LNumber(7)},
		{"none", lua.LNil},
	}
	for _, tt := range tests {
		if got := L.GetGlobal(tt.global); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.global, got, tt.want)
		}
	}
}

func TestNumAtBadColumn(t *testing.T) {
	L := setupNumTest(t, defaultIncrementConfig())

	if err := L.DoString(`_ks_num.at("1", 0)`); err == nil {
		t.Error("at() with column 0 should raise an error")
	}
}

func TestNumStepAll(t *testing.T) {
	L := setupNumTest(t, defaultIncrementConfig())

	err := L.DoString(`
		local res = _ks_num.step_all({"9", "0b1", "zz", "-1"}, 1)
		out = {}
		for i = 1, #res do
			out[i] = tostring(res[i])
		end
		joined = table.concat(out, ",")
	`)
	if err != nil {
		t.Fatalf("DoString error = %v", err)
	}

	if got, want := L.GetGlobal("joined").String(), "10,0b10,false,0"; got != want {
		t.Errorf("step_all = %q, want %q", got, want)
	}
}

func TestNumStepAllRejectsNonStrings(t *testing.T) {
	L := setupNumTest(t, defaultIncrementConfig())

	if err := L.DoString(`_ks_num.step_all({1, 2})`); err == nil {
		t.Error("step_all() with numbers should raise an error")
	}
}
