// Package repl runs an interactive command loop over one task session.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"taskflow/internal/session"
)

// Runner executes one tokenized command line.
type Runner interface {
	RunLine(ctx context.Context, sess *session.Session, args []string, out, errOut io.Writer) int
}

// Prompt is printed before every line.
const Prompt = "taskflow> "

// REPL provides an interactive CLI loop.
type REPL struct {
	Runner  Runner
	Session *session.Session
	In      io.Reader
	Out     io.Writer
	ErrOut  io.Writer
	Quiet   bool
}

// New constructs a REPL instance reading stdin.
func New(r Runner, sess *session.Session) *REPL {
	return &REPL{Runner: r, Session: sess, In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
}

// Run reads lines until EOF, "exit" or "quit", or until ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	if r.In == nil {
		r.In = os.Stdin
	}
	if r.Out == nil {
		r.Out = os.Stdout
	}
	if r.ErrOut == nil {
		r.ErrOut = r.Out
	}

	if !r.Quiet {
		fmt.Fprintln(r.Out, "taskflow shell (type 'help' for commands, 'exit' to quit)")
	}
	scanner := bufio.NewScanner(r.In)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if !r.Quiet {
			fmt.Fprint(r.Out, Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		args, err := Split(line)
		if err != nil {
			fmt.Fprintf(r.ErrOut, "error: %v\n", err)
			continue
		}
		switch args[0] {
		case "exit", "quit":
			return nil
		case "shell":
			fmt.Fprintln(r.ErrOut, "error: already in shell")
			continue
		case "tui", "ui":
			// the board would read stdin behind the scanner's buffer
			fmt.Fprintf(r.ErrOut, "error: %s is not available in the shell\n", args[0])
			continue
		}
		r.Runner.RunLine(ctx, r.Session, args, r.Out, r.ErrOut)
	}
	return scanner.Err()
}

// Split breaks a line into words. Single and double quotes group words;
// a backslash escapes the next character outside single quotes.
func Split(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)
	for _, ch := range line {
		switch {
		case escaped:
			cur.WriteRune(ch)
			escaped = false
		case ch == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				cur.WriteRune(ch)
			}
		case ch == '"' || ch == '\'':
			quote = ch
			inWord = true
		case ch == ' ' || ch == '\t':
			if inWord {
				args = append(args, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(ch)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote")
	}
	if escaped {
		return nil, fmt.Errorf("trailing backslash")
	}
	if inWord {
		args = append(args, cur.String())
	}
	return args, nil
}
