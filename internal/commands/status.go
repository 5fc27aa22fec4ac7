package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/service"
	"taskflow/internal/session"
)

func init() {
	Register(&StatusCmd{})
	Register(&DoneCmd{})
}

// StatusCmd implements the status command.
type StatusCmd struct{}

func (c *StatusCmd) Name() string       { return "status" }
func (c *StatusCmd) Aliases() []string  { return nil }
func (c *StatusCmd) Synopsis() string   { return "Change a task's status" }
func (c *StatusCmd) Usage() string      { return "taskflow status <ref> <pending|in-progress|completed>" }
func (c *StatusCmd) NeedsSession() bool { return true }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return reportRefError(errOut, err)
	}
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: status required")
		return exitcode.UserError
	}
	status, err := service.ParseStatus(args[1])
	if err != nil {
		return reportError(errOut, ref, err)
	}
	return setStatus(ctx, cfg, sess, ref, status, out, errOut)
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return nil }
func (c *DoneCmd) Synopsis() string   { return "Mark a task completed" }
func (c *DoneCmd) Usage() string      { return "taskflow done <ref>" }
func (c *DoneCmd) NeedsSession() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return reportRefError(errOut, err)
	}
	return setStatus(ctx, cfg, sess, ref, service.StatusCompleted, out, errOut)
}

// setStatus is the shared implementation for status and done.
func setStatus(ctx context.Context, cfg *config.Config, sess *session.Session, ref TaskRef, status service.Status, out, errOut io.Writer) int {
	task, err := ResolveTaskRef(ctx, sess, ref)
	if err != nil {
		return reportError(errOut, ref, err)
	}

	if err := sess.SetStatus(ctx, task.ID, status); err != nil {
		return reportError(errOut, ref, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
