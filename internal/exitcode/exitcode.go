// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, invalid field).
	UserError = 1

	// InternalError indicates a failure inside the task store.
	InternalError = 3
)
