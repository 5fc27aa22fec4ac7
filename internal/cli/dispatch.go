// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"taskflow/internal/backend/memory"
	"taskflow/internal/commands"
	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/logging"
	"taskflow/internal/session"
)

// SessionFactory creates the board session from config.
// Used to inject the backend during dispatch.
type SessionFactory func(ctx context.Context, cfg *config.Config) (*session.Session, error)

// MemorySessionFactory opens a board on a fresh in-memory store, seeded with
// the sample tasks unless cfg.Seed is off.
func MemorySessionFactory(ctx context.Context, cfg *config.Config) (*session.Session, error) {
	var storeOpts []memory.Option
	if cfg.Seed {
		storeOpts = append(storeOpts, memory.WithTasks(memory.SeedTasks()))
	}
	opts := []session.Option{session.WithLogger(cfg.Logger)}
	if cfg.Today != "" {
		opts = append(opts, session.WithToday(cfg.Today))
	}
	return session.New(memory.New(storeOpts...), opts...), nil
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  SessionFactory

	// logger of the outermost run, reused by lines run through RunLine
	logger *slog.Logger
}

// NewDispatcher creates a new dispatcher with the given registry and session
// factory. Commands that run further command lines get the dispatcher as
// their runner.
func NewDispatcher(registry *commands.Registry, factory SessionFactory) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		factory:  factory,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, cmd := range registry.All() {
		if ra, ok := cmd.(commands.RunnerAware); ok {
			ra.SetRunner(d)
		}
	}
	return d
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmd, ok := d.lookup(args[0], errOut)
	if !ok {
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

// RunLine runs one command line against an existing session, as the shell
// does for every line it reads. Only --quiet is honored among the common
// flags.
func (d *Dispatcher) RunLine(ctx context.Context, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return exitcode.Success
	}
	cmd, ok := d.lookup(args[0], errOut)
	if !ok {
		return exitcode.UserError
	}

	cfg := &config.Config{Seed: true, Logger: d.logger}
	fs := newFlagSet(cmd, cfg)
	positional, code, ok := parseFlags(fs, cmd, args[1:], out, errOut)
	if !ok {
		return code
	}
	if cmd.NeedsSession() && sess == nil {
		fmt.Fprintln(errOut, "error: internal error: no session")
		return exitcode.InternalError
	}
	return cmd.Run(ctx, cfg, sess, positional, out, errOut)
}

func (d *Dispatcher) lookup(name string, errOut io.Writer) (commands.Command, bool) {
	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return nil, false
	}
	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return nil, false
	}
	return cmd, true
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	fs := newFlagSet(cmd, cfg)
	var noSeed bool
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "")
	fs.BoolVar(&noSeed, "no-seed", false, "")
	fs.StringVar(&cfg.Today, "today", cfg.Today, "")

	positional, code, ok := parseFlags(fs, cmd, args, out, errOut)
	if !ok {
		return code
	}
	if noSeed {
		cfg.Seed = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Logger = logging.New(errOut, cfg.Debug)
	d.logger = cfg.Logger
	cfg.Logger.Debug("dispatch", "command", cmd.Name(), "args", positional)

	var sess *session.Session
	if cmd.NeedsSession() {
		sess, err = d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: internal error: %s\n", err)
			return exitcode.InternalError
		}
	}

	// Run command
	return cmd.Run(ctx, cfg, sess, positional, out, errOut)
}

// newFlagSet creates a flag set with the command's flags and --quiet.
func newFlagSet(cmd commands.Command, cfg *config.Config) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "")
	cmd.RegisterFlags(fs)
	return fs
}

// parseFlags parses args and reports flag errors on errOut. ok is false when
// the command must not run; code is then its exit code.
func parseFlags(fs *flag.FlagSet, cmd commands.Command, args []string, out, errOut io.Writer) (positional []string, code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(out, "Usage:\n  %s\n      %s\n", cmd.Usage(), cmd.Synopsis())
			return nil, exitcode.Success, false
		}

		errStr := err.Error()
		if strings.HasPrefix(errStr, "flag provided but not defined: ") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return nil, exitcode.UserError, false
		}

		// Missing values and bad values read well as the flag package words them.
		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return nil, exitcode.UserError, false
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positional = fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") && positional[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return nil, exitcode.UserError, false
	}
	return positional, exitcode.Success, true
}
