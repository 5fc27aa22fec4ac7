// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskflow/internal/config"
	"taskflow/internal/session"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsSession returns true if the command works on the task board.
	// Commands like help and version return false.
	NeedsSession() bool

	// RegisterFlags registers command-specific flags.
	// It is called before every run, so it must also reset flag fields.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// sess is nil if NeedsSession() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int
}

// LineRunner runs one command line against an existing session.
// The dispatcher implements it; the shell and TUI commands use it.
type LineRunner interface {
	RunLine(ctx context.Context, sess *session.Session, args []string, out, errOut io.Writer) int
}

// RunnerAware is implemented by commands that need a LineRunner.
type RunnerAware interface {
	SetRunner(r LineRunner)
}
