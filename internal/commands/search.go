package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/output"
	"taskflow/internal/session"
)

func init() {
	Register(&SearchCmd{})
	Register(&FilterCmd{})
}

// SearchCmd implements the search command. With no term it clears the search.
type SearchCmd struct{}

func (c *SearchCmd) Name() string       { return "search" }
func (c *SearchCmd) Aliases() []string  { return nil }
func (c *SearchCmd) Synopsis() string   { return "Set or clear the search term" }
func (c *SearchCmd) Usage() string      { return "taskflow search [term...]" }
func (c *SearchCmd) NeedsSession() bool { return true }

func (c *SearchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SearchCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	sess.SetSearchTerm(strings.Join(args, " "))
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// FilterCmd implements the filter command. With no key it lists the filters.
type FilterCmd struct{}

func (c *FilterCmd) Name() string       { return "filter" }
func (c *FilterCmd) Aliases() []string  { return nil }
func (c *FilterCmd) Synopsis() string   { return "Set the active filter or list filters" }
func (c *FilterCmd) Usage() string      { return "taskflow filter [key]" }
func (c *FilterCmd) NeedsSession() bool { return true }

func (c *FilterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FilterCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		output.FormatFilters(out, sess.Filter())
		return exitcode.Success
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	applyFilter(sess, args[0], errOut)
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
