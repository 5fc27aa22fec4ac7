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
	"taskflow/internal/session"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	fields form.Fields
}

// SetFields sets the non-title form fields (for testing).
func (c *AddCmd) SetFields(f form.Fields) {
	c.fields = f
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) NeedsSession() bool { return true }

func (c *AddCmd) Usage() string {
	return "taskflow add [--description <text>] [--priority <p>] [--due <date>] [--assign <who>] [--tags <a,b>] <title...>"
}

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.fields.Description, "description", "", "")
	fs.StringVar(&c.fields.Description, "d", "", "")
	fs.StringVar(&c.fields.Priority, "priority", "medium", "")
	fs.StringVar(&c.fields.Priority, "p", "medium", "")
	fs.StringVar(&c.fields.DueDate, "due", "", "")
	fs.StringVar(&c.fields.AssignedTo, "assign", "", "")
	fs.StringVar(&c.fields.AssignedTo, "a", "", "")
	fs.StringVar(&c.fields.Tags, "tags", "", "")
	fs.StringVar(&c.fields.Tags, "t", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	fields := c.fields
	fields.Title = strings.Join(args, " ")

	draft, err := fields.Draft()
	if err != nil {
		return reportError(errOut, TaskRef{}, err)
	}

	task, err := sess.Create(ctx, draft)
	if err != nil {
		return reportError(errOut, TaskRef{}, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %d\n", task.ID)
	}
	return exitcode.Success
}
