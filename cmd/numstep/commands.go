package main

import (
	"bufio"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dshills/numstep/internal/increment"
	"github.com/dshills/numstep/internal/plugin"
	"github.com/dshills/numstep/internal/plugin/api"
	"github.com/dshills/numstep/internal/plugin/lua"
)

// amount returns the -n flag value, or the configured step when unset.
// Decrementing commands negate it.
func (a *app) amount(cmd *cobra.Command, n int64, decrement bool) int64 {
	if !cmd.Flags().Changed("amount") {
		n = a.cfg.Increment.Step
	}
	if decrement {
		return increment.Negate(n)
	}
	return n
}

func (a *app) stepCmd(name, short string, decrement bool) *cobra.Command {
	var n int64
	cmd := &cobra.Command{
		Use:   name + " TOKEN",
		Short: short,
		Long: short + `.

Prints the new spelling of TOKEN. When TOKEN is not a literal numstep
understands, nothing is printed and the exit status is 1.
Tokens starting with '-' must follow "--".`,
		Example: fmt.Sprintf("  numstep %[1]s 0x0f\n  numstep %[1]s -n 10 1_000\n  numstep %[1]s -- -5", name),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := increment.Step(args[0], a.amount(cmd, n, decrement), a.cfg.Increment.Options())
			if err != nil {
				a.logger.Debug("rejected %q: %v", args[0], err)
				return errRejected
			}
			fmt.Fprintln(a.stdout, out)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&n, "amount", "n", 1, "Amount to add (default from config)")
	return cmd
}

func (a *app) atCmd() *cobra.Command {
	var (
		n   int64
		col int
	)
	cmd := &cobra.Command{
		Use:   "at LINE",
		Short: "Step the literal under or after a column of LINE",
		Long: `Step the literal under or after a column of LINE and print the new line.

The column is a 1-based byte column. When no literal is found at or after
it, nothing is printed and the exit status is 1.`,
		Example: `  numstep at --col 9 "width = 0x1f;"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if col < 1 {
				return fmt.Errorf("--col must be >= 1, got %d", col)
			}
			line := args[0]
			edit, ok := increment.IncrementAt(line, col-1, a.amount(cmd, n, false), a.cfg.Increment.Options())
			if !ok {
				a.logger.Debug("no literal at column %d of %q", col, line)
				return errRejected
			}
			a.logger.Debug("replaced bytes %d-%d with %q", edit.Span.Start, edit.Span.End, edit.Text)
			fmt.Fprintln(a.stdout, edit.Apply(line))
			return nil
		},
	}
	cmd.Flags().Int64VarP(&n, "amount", "n", 1, "Amount to add (default from config)")
	cmd.Flags().IntVar(&col, "col", 1, "1-based byte column of the cursor")
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	var n int64
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Step one token per line of standard input",
		Long: `Step one token per line of standard input.

Each input line produces one output line. Lines that are not literals are
written back unchanged. Lines are stepped concurrently, bounded by the
increment.workers setting; output order matches input order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount := a.amount(cmd, n, false)

			var reqs []increment.Request
			sc := bufio.NewScanner(a.stdin)
			for sc.Scan() {
				reqs = append(reqs, increment.Request{Text: sc.Text(), Amount: amount})
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			results, err := increment.StepAll(cmd.Context(), reqs, a.cfg.Increment.BatchOptions())
			if err != nil {
				return err
			}

			w := bufio.NewWriter(a.stdout)
			rejected := 0
			for i, res := range results {
				if !res.Changed() {
					rejected++
					a.logger.WithField("line", i+1).Debug("kept %q: %v", res.Text, res.Err)
				}
				fmt.Fprintln(w, res.Text)
			}
			a.logger.Info("stepped %d of %d tokens", len(results)-rejected, len(results))
			return w.Flush()
		},
	}
	cmd.Flags().Int64VarP(&n, "amount", "n", 1, "Amount to add (default from config)")
	return cmd
}

func (a *app) luaCmd() *cobra.Command {
	var (
		code string
		list bool
	)
	cmd := &cobra.Command{
		Use:   "lua [SCRIPT]",
		Short: "Run a Lua script with the ks API",
		Long: `Run a Lua script with the ks API.

SCRIPT is a file path or the name of a script in the search paths
(plugin.paths, then ~/.config/numstep/scripts, ~/.local/share/numstep/scripts
and ./.numstep/scripts). Scripts reach numstep through require("ks").num.
The runtime is sandboxed: io, os and debug are unavailable and each run is
bounded by plugin.timeout.`,
		Example: `  numstep lua script.lua
  numstep lua --list
  numstep lua -e 'print(require("ks").num.increment("0x0f"))'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := plugin.NewLoader(plugin.WithPaths(slices.Concat(a.cfg.Plugin.Paths, plugin.DefaultPaths())...))

			if list {
				return a.listScripts(loader)
			}
			if (code == "") == (len(args) == 0) {
				return errors.New("give either SCRIPT or -e CODE")
			}

			var path string
			if code == "" {
				script, err := loader.Find(args[0])
				if err != nil {
					return err
				}
				path = script.Path
			}

			state, err := lua.NewState(
				lua.WithExecutionTimeout(a.cfg.Plugin.Timeout),
				lua.WithOutput(a.stdout),
			)
			if err != nil {
				return err
			}
			defer state.Close()

			registry, err := api.DefaultRegistry(api.NewNumModule(a.cfg.Increment, a.logger))
			if err != nil {
				return err
			}
			if err := registry.InjectAll(state.LuaState()); err != nil {
				return err
			}

			if code != "" {
				return state.DoString(code)
			}
			a.logger.Debug("running %s", path)
			return state.DoFile(path)
		},
	}
	cmd.Flags().StringVarP(&code, "eval", "e", "", "Lua code to run instead of a script file")
	cmd.Flags().BoolVar(&list, "list", false, "List scripts in the search paths")
	return cmd
}

func (a *app) listScripts(loader *plugin.Loader) error {
	scripts, err := loader.Discover()
	if err != nil {
		return err
	}
	for _, s := range scripts {
		if s.Error != nil {
			a.logger.Warn("script %s: %v", s.Name, s.Error)
			continue
		}
		fmt.Fprintf(a.stdout, "%s\t%s\n", s.Name, s.Path)
	}
	return nil
}
