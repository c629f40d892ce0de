// Package main is the entry point for the numstep command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/numstep/internal/config"
	"github.com/dshills/numstep/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errRejected reports that the input held no literal to step. It maps to
// exit status 1 without an error message.
var errRejected = errors.New("rejected")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errRejected) {
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// app holds the state shared by all commands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Global flags
	configPath string
	logLevel   string
	separator  string

	cfg    *config.Config
	logger *logging.Logger
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "numstep",
		Short: "Step integer literals the way an editor's increment command does",
		Long: `numstep adds to integer literals while keeping their spelling:
base prefix, zero padding, hex digit case and digit grouping.

Supported literals: decimal (42, -7, 1_000), hexadecimal (0xff, 16'hFF),
octal (0o17), binary (0b1010, 8'b0000_0001) and sized decimal (8'd42).`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("numstep %s\nCommit: %s\nBuilt: %s\n", version, commit, date))

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to configuration file (.toml, .yaml)")
	flags.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&a.separator, "separator", string(config.Default().Increment.Separator), "Digit grouping separator")

	root.AddCommand(
		a.stepCmd("inc", "Increment a literal", false),
		a.stepCmd("dec", "Decrement a literal", true),
		a.atCmd(),
		a.batchCmd(),
		a.luaCmd(),
	)
	return root
}

// setup resolves configuration and the logger. Flags override the file and
// the environment.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("separator") {
		sep, err := config.ParseSeparator(a.separator)
		if err != nil {
			return err
		}
		cfg.Increment.Separator = sep
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Output: a.stderr,
		Name:   "numstep",
	})
	logging.Set(a.logger)

	a.logger.Debug("configuration loaded from %q", a.configPath)
	return nil
}
