package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/metrics"
	"taskflow/internal/output"
	"taskflow/internal/session"
)

func init() {
	Register(&StatsCmd{})
}

// StatsCmd implements the stats command.
type StatsCmd struct {
	format string
}

// SetFormat sets the output format (for testing).
func (c *StatsCmd) SetFormat(format string) {
	c.format = format
}

func (c *StatsCmd) Name() string       { return "stats" }
func (c *StatsCmd) Aliases() []string  { return nil }
func (c *StatsCmd) Synopsis() string   { return "Show task counts" }
func (c *StatsCmd) Usage() string      { return "taskflow stats [--format text|prom]" }
func (c *StatsCmd) NeedsSession() bool { return true }

func (c *StatsCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "text", "")
}

func (c *StatsCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	switch c.format {
	case "", "text":
		stats, err := sess.Stats(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: internal error: %v\n", err)
			return exitcode.InternalError
		}
		output.FormatStats(out, stats)
	case "prom":
		if err := metrics.WriteText(out, metrics.NewRegistry(sess)); err != nil {
			fmt.Fprintf(errOut, "error: internal error: %v\n", err)
			return exitcode.InternalError
		}
	default:
		fmt.Fprintf(errOut, "error: unknown format: %s\n", c.format)
		return exitcode.UserError
	}
	return exitcode.Success
}
