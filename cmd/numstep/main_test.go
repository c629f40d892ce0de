package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestStepCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"inc hex", []string{"inc", "0x0f"}, 0, "0x10\n"},
		{"inc grouped", []string{"inc", "999_999"}, 0, "1_000_000\n"},
		{"dec amount", []string{"dec", "-n", "10", "1_000"}, 0, "990\n"},
		{"inc negative token", []string{"inc", "--", "-5"}, 0, "-4\n"},
		{"dec floors at zero", []string{"dec", "0b0001", "-n", "5"}, 0, "0b0000\n"},
		{"dec smallest amount", []string{"dec", "--amount=-9223372036854775808", "5"}, 0, "9223372036854775812\n"},
		{"inc smallest amount", []string{"inc", "--amount=-9223372036854775808", "5"}, 0, "-9223372036854775803\n"},
		{"custom separator", []string{"--separator", ",", "inc", "9,999"}, 0, "10,000\n"},
		{"rejected", []string{"inc", "abc"}, 1, ""},
		{"rejected separator", []string{"inc", "_1"}, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runCLI(t, "", tt.args...)
			if got.code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", got.code, tt.wantCode, got.stderr)
			}
			if got.stdout != tt.wantOut {
				t.Errorf("stdout = %q, want %q", got.stdout, tt.wantOut)
			}
		})
	}
}

func TestRejectedPrintsNoError(t *testing.T) {
	got := runCLI(t, "", "inc", "zz")
	if strings.Contains(got.stderr, "Error:") {
		t.Errorf("stderr = %q, want no error message for a rejection", got.stderr)
	}
}

func TestAtCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"under cursor", []string{"at", "--col", "9", "width = 0x1f;"}, 0, "width = 0x20;\n"},
		{"after cursor", []string{"at", "--col", "1", "x := 41", "-n", "2"}, 0, "x := 43\n"},
		{"no literal", []string{"at", "--col", "1", "no digits"}, 1, ""},
		{"bad column", []string{"at", "--col", "0", "1"}, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runCLI(t, "", tt.args...)
			if got.code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", got.code, tt.wantCode, got.stderr)
			}
			if got.stdout != tt.wantOut {
				t.Errorf("stdout = %q, want %q", got.stdout, tt.wantOut)
			}
		})
	}
}

func TestBatchCommand(t *testing.T) {
	got := runCLI(t, "9\nzz\n0b1\n-1\n", "batch")
	if got.code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr %q)", got.code, got.stderr)
	}
	if want := "10\nzz\n0b10\n0\n"; got.stdout != want {
		t.Errorf("stdout = %q, want %q", got.stdout, want)
	}
}

func TestLuaCommand(t *testing.T) {
	script := filepath.Join(t.TempDir(), "step.lua")
	src := `
local ks = require("ks")
print(ks.num.decrement("0x10"))
print(ks.num.increment("nope"))
`
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"eval", []string{"lua", "-e", `print(require("ks").num.increment("0x0f"))`}, 0, "0x10\n"},
		{"file", []string{"lua", script}, 0, "0x0f\nnil\n"},
		{"no input", []string{"lua"}, 1, ""},
		{"runtime error", []string{"lua", "-e", `error("boom")`}, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runCLI(t, "", tt.args...)
			if got.code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", got.code, tt.wantCode, got.stderr)
			}
			if got.stdout != tt.wantOut {
				t.Errorf("stdout = %q, want %q", got.stdout, tt.wantOut)
			}
		})
	}
}

func TestLuaNamedScripts(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bump.lua"), []byte(`print(require("ks").num.increment("8'd9"))`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NUMSTEP_PLUGIN_PATHS", dir)

	got := runCLI(t, "", "lua", "bump")
	if got.code != 0 || got.stdout != "8'd10\n" {
		t.Errorf("lua bump = (%d, %q), want (0, %q) (stderr %q)", got.code, got.stdout, "8'd10\n", got.stderr)
	}

	got = runCLI(t, "", "lua", "--list")
	if want := "bump\t" + filepath.Join(dir, "bump.lua") + "\n"; !strings.Contains(got.stdout, want) {
		t.Errorf("lua --list stdout = %q, want it to contain %q", got.stdout, want)
	}

	if got := runCLI(t, "", "lua", "no-such-script"); got.code != 1 {
		t.Errorf("lua no-such-script exit code = %d, want 1", got.code)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "numstep.toml")
	if err := os.WriteFile(tomlPath, []byte("[increment]\nstep = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "numstep.yaml")
	if err := os.WriteFile(yamlPath, []byte("increment:\n  separator: \"'\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := runCLI(t, "", "--config", tomlPath, "inc", "1"); got.stdout != "6\n" {
		t.Errorf("toml step: stdout = %q, want %q (stderr %q)", got.stdout, "6\n", got.stderr)
	}
	if got := runCLI(t, "", "--config", tomlPath, "inc", "-n", "1", "1"); got.stdout != "2\n" {
		t.Errorf("flag over config: stdout = %q, want %q", got.stdout, "2\n")
	}
	if got := runCLI(t, "", "-c", yamlPath, "inc", "9'999"); got.stdout != "10'000\n" {
		t.Errorf("yaml separator: stdout = %q, want %q (stderr %q)", got.stdout, "10'000\n", got.stderr)
	}
}

func TestGlobalFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad separator", []string{"--separator", "ab", "inc", "1"}},
		{"bad log level", []string{"--log-level", "loud", "inc", "1"}},
		{"unsupported config", []string{"--config", "numstep.ini", "inc", "1"}},
		{"unknown command", []string{"frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runCLI(t, "", tt.args...)
			if got.code != 1 {
				t.Errorf("exit code = %d, want 1", got.code)
			}
			if !strings.Contains(got.stderr, "Error:") {
				t.Errorf("stderr = %q, want an error message", got.stderr)
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	got := runCLI(t, "", "--version")
	if got.code != 0 {
		t.Fatalf("exit code = %d, want 0", got.code)
	}
	if !strings.HasPrefix(got.stdout, "numstep "+version) {
		t.Errorf("stdout = %q, want version line", got.stdout)
	}
}
