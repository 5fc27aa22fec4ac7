package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/filter"
	"taskflow/internal/output"
	"taskflow/internal/session"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskflow` (no args) and `taskflow list`.
type ListCmd struct {
	filter optString
	search optString
}

// SetFilter sets the filter flag (for testing).
func (c *ListCmd) SetFilter(key string) {
	_ = c.filter.Set(key)
}

// SetSearch sets the search flag (for testing).
func (c *ListCmd) SetSearch(term string) {
	_ = c.search.Set(term)
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks in the current view" }
func (c *ListCmd) Usage() string      { return "taskflow list [--filter <key>] [--search <term>]" }
func (c *ListCmd) NeedsSession() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	c.filter, c.search = optString{}, optString{}
	fs.Var(&c.filter, "filter", "")
	fs.Var(&c.filter, "f", "")
	fs.Var(&c.search, "search", "")
	fs.Var(&c.search, "s", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if c.filter.set {
		applyFilter(sess, c.filter.value, errOut)
	}
	if c.search.set {
		sess.SetSearchTerm(c.search.value)
	}

	tasks, err := sess.Visible(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: internal error: %v\n", err)
		return exitcode.InternalError
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			output.FormatEmpty(out, sess.EmptyHint())
		}
		return exitcode.Success
	}

	today := sess.Today()
	for i, task := range tasks {
		output.FormatCard(out, i+1, task, today)
	}
	return exitcode.Success
}

// applyFilter sets the session filter from user input. Unknown keys fall
// back to showing all tasks, with a warning.
func applyFilter(sess *session.Session, value string, errOut io.Writer) {
	key, ok := filter.ParseKey(value)
	if !ok {
		fmt.Fprintf(errOut, "warning: unknown filter: %s (showing all tasks)\n", value)
	}
	sess.SetFilter(key)
}
