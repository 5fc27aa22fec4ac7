package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/repl"
	"taskflow/internal/session"
)

func init() {
	Register(&ShellCmd{In: os.Stdin})
}

// ShellCmd implements the shell command: an interactive loop in which every
// line is a command run against the same board.
type ShellCmd struct {
	In     io.Reader
	runner LineRunner
}

// SetRunner implements RunnerAware.
func (c *ShellCmd) SetRunner(r LineRunner) { c.runner = r }

func (c *ShellCmd) Name() string       { return "shell" }
func (c *ShellCmd) Aliases() []string  { return nil }
func (c *ShellCmd) Synopsis() string   { return "Start an interactive session" }
func (c *ShellCmd) Usage() string      { return "taskflow shell" }
func (c *ShellCmd) NeedsSession() bool { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if c.runner == nil {
		fmt.Fprintln(errOut, "error: shell unavailable")
		return exitcode.InternalError
	}

	r := repl.New(c.runner, sess)
	r.In = c.In
	r.Out = out
	r.ErrOut = errOut
	r.Quiet = cfg.Quiet
	if err := r.Run(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.InternalError
	}
	return exitcode.Success
}
