package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/form"
	"taskflow/internal/service"
	"taskflow/internal/session"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only the given flags change.
type EditCmd struct {
	title       optString
	description optString
	priority    optString
	due         optString
	assign      optString
	tags        optString
}

func (c *EditCmd) Name() string       { return "edit" }
func (c *EditCmd) Aliases() []string  { return []string{"update"} }
func (c *EditCmd) Synopsis() string   { return "Edit a task" }
func (c *EditCmd) NeedsSession() bool { return true }

func (c *EditCmd) Usage() string {
	return "taskflow edit [--title <t>] [--description <text>] [--priority <p>] [--due <date>] [--assign <who>] [--tags <a,b>] <ref>"
}

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	*c = EditCmd{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.description, "description", "")
	fs.Var(&c.description, "d", "")
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.priority, "p", "")
	fs.Var(&c.due, "due", "")
	fs.Var(&c.assign, "assign", "")
	fs.Var(&c.assign, "a", "")
	fs.Var(&c.tags, "tags", "")
	fs.Var(&c.tags, "t", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return reportRefError(errOut, err)
	}

	patch, err := c.patch()
	if err != nil {
		return reportError(errOut, ref, err)
	}
	if patch.Empty() {
		fmt.Fprintln(errOut, "error: nothing to edit")
		return exitcode.UserError
	}

	task, err := ResolveTaskRef(ctx, sess, ref)
	if err != nil {
		return reportError(errOut, ref, err)
	}

	if _, err := sess.Update(ctx, task.ID, patch); err != nil {
		return reportError(errOut, ref, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// patch builds a patch from the flags that were given.
func (c *EditCmd) patch() (service.Patch, error) {
	var p service.Patch
	if c.title.set {
		if strings.TrimSpace(c.title.value) == "" {
			return p, service.ErrTitleRequired
		}
		p.Title = &c.title.value
	}
	if c.description.set {
		p.Description = &c.description.value
	}
	if c.priority.set {
		pr, err := service.ParsePriority(c.priority.value)
		if err != nil {
			return p, err
		}
		p.Priority = &pr
	}
	if c.due.set {
		due, err := form.ParseDueDate(c.due.value)
		if err != nil {
			return p, err
		}
		p.DueDate = &due
	}
	if c.assign.set {
		p.AssignedTo = &c.assign.value
	}
	if c.tags.set {
		tags := form.ParseTags(c.tags.value)
		p.Tags = &tags
	}
	return p, nil
}
