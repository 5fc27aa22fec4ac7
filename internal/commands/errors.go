package commands

import (
	"errors"
	"fmt"
	"io"

	"taskflow/internal/exitcode"
	"taskflow/internal/form"
	"taskflow/internal/service"
)

// reportError prints err the way the user should see it and returns the
// matching exit code.
func reportError(errOut io.Writer, ref TaskRef, err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		fmt.Fprintf(errOut, "error: task not found: %s\n", ref)
		return exitcode.UserError
	case errors.Is(err, errPositionOutOfRange):
		fmt.Fprintf(errOut, "error: task number out of range: %d\n", ref.Position)
		return exitcode.UserError
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPriority),
		errors.Is(err, form.ErrInvalidDate):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: internal error: %v\n", err)
		return exitcode.InternalError
	}
}

// reportRefError prints a task reference parse error.
func reportRefError(errOut io.Writer, err error) int {
	if errors.Is(err, ErrTaskRefRequired) {
		fmt.Fprintln(errOut, "error: task reference required")
	} else {
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return exitcode.UserError
}
