package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/session"
	"taskflow/internal/tui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd implements the tui command.
type TuiCmd struct{}

func (c *TuiCmd) Name() string       { return "tui" }
func (c *TuiCmd) Aliases() []string  { return []string{"ui"} }
func (c *TuiCmd) Synopsis() string   { return "Open the full-screen board (not from the shell)" }
func (c *TuiCmd) Usage() string      { return "taskflow tui" }
func (c *TuiCmd) NeedsSession() bool { return true }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TuiCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if err := tui.Run(ctx, sess, cfg.Logger); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.InternalError
	}
	return exitcode.Success
}
