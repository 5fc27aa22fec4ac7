package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"taskflow/internal/service"
	"taskflow/internal/session"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	ID         int64 // task id, when ByPosition is false
	Position   int   // 1-based position in the current view, when ByPosition is true
	ByPosition bool
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses the task reference in the first arg.
//
// Parsing rules:
// 1. All digits (42) → task id
// 2. '#' followed by digits (#2) → position in the current filtered view
// 3. Anything else → error: invalid task reference: <ref>
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}

	arg := args[0]

	if isAllDigits(arg) {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id}, nil
	}

	if rest, ok := strings.CutPrefix(arg, "#"); ok && isAllDigits(rest) {
		pos, err := strconv.Atoi(rest)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Position: pos, ByPosition: true}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// String formats the reference the way the user typed it.
func (r TaskRef) String() string {
	if r.ByPosition {
		return "#" + strconv.Itoa(r.Position)
	}
	return strconv.FormatInt(r.ID, 10)
}

// errPositionOutOfRange is returned when a #N reference is outside the view.
var errPositionOutOfRange = errors.New("task number out of range")

// ResolveTaskRef looks up the task a reference points at.
// Positions are counted in the session's current view.
func ResolveTaskRef(ctx context.Context, sess *session.Session, ref TaskRef) (service.Task, error) {
	if !ref.ByPosition {
		return sess.Service().GetTask(ctx, ref.ID)
	}

	visible, err := sess.Visible(ctx)
	if err != nil {
		return service.Task{}, err
	}
	if ref.Position < 1 || ref.Position > len(visible) {
		return service.Task{}, fmt.Errorf("%w: %d", errPositionOutOfRange, ref.Position)
	}
	return visible[ref.Position-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
